package cliargs

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// helpWidth is the wrapping width: terminal width minus a small margin,
// with $COLUMNS and 80 as fallbacks outside a terminal.
func helpWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w - 3
	}

	if cols := os.Getenv("COLUMNS"); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n - 3
		}
	}

	return 80 - 3
}

// renderOptionHelp formats the help text of a single option: names, help
// line, sub-grammar fields for structured options, manual text, and the
// type/default/choices details.
func renderOptionHelp(option *Option, width int) string {
	var b strings.Builder

	b.WriteString("  " + strings.Join(option.Names, ", ") + "\n    " + option.Help + "\n\n")

	if option.Struct != nil {
		args := make([]string, 0, len(option.Struct.Fields))

		for _, field := range option.Struct.Fields {
			if field.Required {
				args = append(args, "{"+field.Name+"}")
			} else {
				args = append(args, fmt.Sprintf("{%s=%v}", field.Name, field.Default))
			}
		}

		b.WriteString("    Arguments:\n    " + strings.Join(args, ",") + "\n")
	}

	if option.Manual != "" {
		b.WriteString(indentText(option.Manual, "    ") + "\n\n")
	}

	switch {
	case option.Struct != nil:
		// The field list above says it all.
	case option.Kind == Boolean:
		b.WriteString("    type: flag\n")
	default:
		b.WriteString("    type: " + option.Contract.Name + "\n")

		if option.Kind == List {
			b.WriteString("    nargs: *\n")
		}

		if option.Default != nil {
			b.WriteString(fmt.Sprintf("    default: %v\n", option.Default))
		}

		if len(option.Choices) > 0 {
			b.WriteString("    choices: " + strings.Join(option.Choices, ", ") + "\n")
		}
	}

	return wrap(b.String(), width) + "\n"
}

// renderProgramHelp formats the one-line-per-entry program overview in
// declaration order, with text headings and blank separators preserved.
func renderProgramHelp(items []helpItem, width int) string {
	var b strings.Builder

	for _, item := range items {
		switch {
		case item.blank:
			b.WriteString("\n")
		case item.text != "":
			b.WriteString("\n  " + item.text + "\n")
		case item.option != nil:
			b.WriteString("  " + strings.Join(item.option.Names, ", ") + ": " + item.option.Help + "\n")
		case item.required != nil:
			b.WriteString("  " + item.required.Name + ": " + item.required.Help + "\n")
		}
	}

	b.WriteString("\n")

	return wrap(b.String(), width) + "\n"
}

// wrap fills each line of text to width, preserving the line's existing
// leading whitespace as the indent of its continuation lines.
func wrap(text string, width int) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = fillLine(line, width)
	}

	return strings.Join(lines, "\n")
}

func fillLine(line string, width int) string {
	indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

	words := strings.Fields(line)
	if len(words) == 0 {
		return line
	}

	var (
		b       strings.Builder
		current = indent + words[0]
	)

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			b.WriteString(current + "\n")
			current = indent + word

			continue
		}

		current += " " + word
	}

	b.WriteString(current)

	return b.String()
}

// indentText prefixes every non-blank line, leaving blank lines alone.
func indentText(text string, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = prefix + line
		}
	}

	return strings.Join(lines, "\n")
}
