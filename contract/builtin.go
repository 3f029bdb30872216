package contract

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	errNotATime      = errors.New("neither a number of frames nor a readable time")
	errNotAColor     = errors.New("invalid color")
	errNotARate      = errors.New("invalid frame rate")
	errNotASpeed     = errors.New("speed must be a number greater than 0")
	errNotASample    = errors.New("invalid sample rate")
	errMarginValues  = errors.New("margin takes one value or a start,end pair")
	errNegativeValue = errors.New("value must not be negative")
)

// String accepts any text unchanged.
var String = Contract{
	Name:  "string",
	Parse: func(raw string) (any, error) { return raw, nil },
	Check: func(v any) bool { _, ok := v.(string); return ok },
}

// Int accepts a signed integer.
var Int = Contract{
	Name: "int",
	Parse: func(raw string) (any, error) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}

		return int(n), nil
	},
	Check: isIntLike,
}

// UInt accepts an integer that is zero or greater.
var UInt = Contract{
	Name: "uint",
	Parse: func(raw string) (any, error) {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}

		if n < 0 {
			return nil, errNegativeValue
		}

		return int(n), nil
	},
	Check: func(v any) bool {
		n, ok := asInt64(v)
		return ok && n >= 0
	},
}

// Float accepts a floating point number.
var Float = Contract{
	Name: "float",
	Parse: func(raw string) (any, error) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", raw)
		}

		return f, nil
	},
	Check: isFloatLike,
}

// Bool accepts true/false in the spellings strconv understands.
var Bool = Contract{
	Name: "bool",
	Parse: func(raw string) (any, error) {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q", raw)
		}

		return b, nil
	},
	Check: func(v any) bool { _, ok := v.(bool); return ok },
}

// Number accepts an exact decimal number. Unlike Float it never loses
// precision, which matters for timestamps multiplied by timebases later on.
var Number = Contract{
	Name: "number",
	Parse: func(raw string) (any, error) {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", raw)
		}

		return d, nil
	},
	Check: func(v any) bool {
		if _, ok := v.(decimal.Decimal); ok {
			return true
		}

		return isFloatLike(v)
	},
}

// Rate accepts a frame rate: "30", "29.97", or an exact fraction like
// "30000/1001". The result is a decimal.Decimal.
var Rate = Contract{
	Name: "rate",
	Parse: func(raw string) (any, error) {
		if num, den, ok := strings.Cut(raw, "/"); ok {
			n, err1 := decimal.NewFromString(num)
			d, err2 := decimal.NewFromString(den)

			if err1 != nil || err2 != nil || d.IsZero() {
				return nil, fmt.Errorf("%w: %q", errNotARate, raw)
			}

			return n.Div(d), nil
		}

		d, err := decimal.NewFromString(raw)
		if err != nil || d.Sign() <= 0 {
			return nil, fmt.Errorf("%w: %q", errNotARate, raw)
		}

		return d, nil
	},
	Check: func(v any) bool {
		d, ok := v.(decimal.Decimal)
		return ok && d.Sign() > 0
	},
}

// Speed accepts a playback speed strictly greater than zero. 99999 is the
// conventional "drop this section entirely" speed.
var Speed = Contract{
	Name: "speed",
	Parse: func(raw string) (any, error) {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f <= 0 {
			return nil, fmt.Errorf("%w, got %q", errNotASpeed, raw)
		}

		return f, nil
	},
	Check: func(v any) bool {
		f, ok := asFloat64(v)
		return ok && f > 0
	},
}

// TimeUnit says how a Time value is to be resolved against a timeline.
type TimeUnit int

const (
	// UnitFrames counts exact frames at the timeline's timebase.
	UnitFrames TimeUnit = iota
	// UnitSeconds is wall-clock seconds.
	UnitSeconds
	// UnitPercent is a fraction of the whole timeline.
	UnitPercent
)

// Time is a point or span expressed in frames, seconds, or percent.
// Resolution to a frame count needs a timebase, which only the timeline
// layer knows, so the value stays symbolic here.
type Time struct {
	Value decimal.Decimal
	Unit  TimeUnit
}

func (t Time) String() string {
	switch t.Unit {
	case UnitSeconds:
		return t.Value.String() + "sec"
	case UnitPercent:
		return t.Value.String() + "%"
	default:
		return t.Value.String()
	}
}

var secondSuffixes = []string{"seconds", "second", "secs", "sec", "s"}

// parseTime understands "86" (frames), "1.5sec", "2min", "0.3hour", "10%".
// A bare non-integer number is rejected: it is ambiguous between frames
// and seconds.
func parseTime(raw string) (Time, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Time{}, fmt.Errorf("%w: %q", errNotATime, raw)
	}

	if rest, ok := strings.CutSuffix(text, "%"); ok {
		d, err := decimal.NewFromString(strings.TrimSpace(rest))
		if err != nil {
			return Time{}, fmt.Errorf("%w: %q", errNotATime, raw)
		}

		return Time{Value: d, Unit: UnitPercent}, nil
	}

	if strings.Contains(text, ":") {
		return parseClockTime(raw, text)
	}

	units := []struct {
		suffixes []string
		factor   int64
	}{
		{[]string{"hours", "hour", "h"}, 3600},
		{[]string{"minutes", "minute", "mins", "min"}, 60},
		{secondSuffixes, 1},
	}

	for _, unit := range units {
		for _, suffix := range unit.suffixes {
			rest, ok := strings.CutSuffix(text, suffix)
			if !ok {
				continue
			}

			d, err := decimal.NewFromString(strings.TrimSpace(rest))
			if err != nil {
				return Time{}, fmt.Errorf("%w: %q", errNotATime, raw)
			}

			return Time{Value: d.Mul(decimal.NewFromInt(unit.factor)), Unit: UnitSeconds}, nil
		}
	}

	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return Time{}, fmt.Errorf("%w: %q", errNotATime, raw)
	}

	return Time{Value: decimal.NewFromInt(n), Unit: UnitFrames}, nil
}

// parseClockTime understands "mm:ss" and "hh:mm:ss", with an optional
// fractional second, e.g. "00:01:30.5".
func parseClockTime(raw, text string) (Time, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return Time{}, fmt.Errorf("%w: %q", errNotATime, raw)
	}

	total := decimal.Zero

	for _, part := range parts {
		d, err := decimal.NewFromString(part)
		if err != nil || d.Sign() < 0 {
			return Time{}, fmt.Errorf("%w: %q", errNotATime, raw)
		}

		total = total.Mul(decimal.NewFromInt(60)).Add(d)
	}

	return Time{Value: total, Unit: UnitSeconds}, nil
}

// TimeValue accepts a frame count, a suffixed duration, or a percentage.
var TimeValue = Contract{
	Name: "time",
	Parse: func(raw string) (any, error) {
		t, err := parseTime(raw)
		if err != nil {
			return nil, err
		}

		return t, nil
	},
	Check: func(v any) bool {
		switch x := v.(type) {
		case Time:
			return true
		case string:
			_, err := parseTime(x)
			return err == nil
		default:
			_, ok := asInt64(v)
			return ok
		}
	},
}

// Margin is the padding applied around kept sections: how much is added
// before the start and after the end.
type Margin struct {
	Start Time
	End   Time
}

// MarginValue accepts either one time applied to both sides or a
// "start,end" pair.
var MarginValue = Contract{
	Name: "margin",
	Parse: func(raw string) (any, error) {
		parts := strings.Split(raw, ",")
		if len(parts) > 2 {
			return nil, errMarginValues
		}

		start, err := parseTime(parts[0])
		if err != nil {
			return nil, err
		}

		end := start

		if len(parts) == 2 {
			end, err = parseTime(parts[1])
			if err != nil {
				return nil, err
			}
		}

		return Margin{Start: start, End: end}, nil
	},
	Check: func(v any) bool {
		_, ok := v.(Margin)
		return ok
	},
}

var namedColors = map[string]bool{
	"black": true, "white": true, "red": true, "green": true, "blue": true,
	"yellow": true, "cyan": true, "magenta": true, "gray": true, "grey": true,
	"orange": true, "purple": true, "pink": true, "brown": true,
	"silver": true, "maroon": true, "navy": true, "teal": true,
	"olive": true, "lime": true, "aqua": true, "fuchsia": true,
}

func validColor(raw string) bool {
	if namedColors[strings.ToLower(raw)] {
		return true
	}

	if !strings.HasPrefix(raw, "#") {
		return false
	}

	hex := raw[1:]
	if len(hex) != 3 && len(hex) != 6 && len(hex) != 8 {
		return false
	}

	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}

	return true
}

// Color accepts "#rgb", "#rrggbb", "#rrggbbaa", or a basic color name.
// The raw spelling is preserved; rendering layers resolve it.
var Color = Contract{
	Name: "color",
	Parse: func(raw string) (any, error) {
		if !validColor(raw) {
			return nil, fmt.Errorf("%w: %q", errNotAColor, raw)
		}

		return raw, nil
	},
	Check: func(v any) bool {
		s, ok := v.(string)
		return ok && validColor(s)
	},
}

// SampleRate accepts "48000", "44100 Hz", or "44.1 kHz" and yields Hz as int.
var SampleRate = Contract{
	Name: "samplerate",
	Parse: func(raw string) (any, error) {
		text := strings.TrimSpace(raw)
		factor := decimal.NewFromInt(1)

		if rest, ok := cutSuffixFold(text, "khz"); ok {
			factor = decimal.NewFromInt(1000)
			text = strings.TrimSpace(rest)
		} else if rest, ok := cutSuffixFold(text, "hz"); ok {
			text = strings.TrimSpace(rest)
		}

		d, err := decimal.NewFromString(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", errNotASample, raw)
		}

		hz := d.Mul(factor)
		if !hz.IsInteger() || hz.Sign() <= 0 {
			return nil, fmt.Errorf("%w: %q", errNotASample, raw)
		}

		return int(hz.IntPart()), nil
	},
	Check: func(v any) bool {
		n, ok := asInt64(v)
		return ok && n > 0
	},
}

func cutSuffixFold(s, suffix string) (string, bool) {
	if len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix) {
		return s[:len(s)-len(suffix)], true
	}

	return s, false
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	if n, ok := asInt64(v); ok {
		return float64(n), true
	}

	switch f := v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	case decimal.Decimal:
		return f.InexactFloat64(), true
	default:
		return 0, false
	}
}

func isIntLike(v any) bool {
	_, ok := asInt64(v)
	return ok
}

func isFloatLike(v any) bool {
	_, ok := asFloat64(v)
	return ok
}
