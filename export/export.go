// Package export parses the --export value: an exporter name optionally
// followed by a colon and an inline payload of exporter attributes, e.g.
// "timeline:api=3". The payload shares the structured-flag mini-language.
package export

import (
	"fmt"
	"strings"

	"github.com/clipcut/clipcut"
	"github.com/clipcut/clipcut/contract"
	"github.com/clipcut/clipcut/inline"
)

// Kind names one export target.
type Kind string

const (
	Default      Kind = "default"
	Premiere     Kind = "premiere"
	FinalCutPro  Kind = "final-cut-pro"
	ShotCut      Kind = "shotcut"
	JSON         Kind = "json"
	Timeline     Kind = "timeline"
	Audio        Kind = "audio"
	ClipSequence Kind = "clip-sequence"
)

// Export is a resolved export target with its typed attributes.
type Export struct {
	Kind  Kind
	Attrs map[string]any
}

// specs gives each exporter its attribute sub-grammar. Only the timeline
// flavors take attributes; the rest accept an empty payload only.
var specs = map[Kind]inline.Spec{
	Default:      inline.NewSpec("default"),
	Premiere:     inline.NewSpec("premiere"),
	FinalCutPro:  inline.NewSpec("final-cut-pro"),
	ShotCut:      inline.NewSpec("shotcut"),
	JSON:         inline.NewSpec("json", inline.Opt("api", contract.String, "1")),
	Timeline:     inline.NewSpec("timeline", inline.Opt("api", contract.String, "1")),
	Audio:        inline.NewSpec("audio"),
	ClipSequence: inline.NewSpec("clip-sequence"),
}

// Names returns every valid exporter name, in a stable order.
func Names() []string {
	return []string{
		string(Default), string(Premiere), string(FinalCutPro), string(ShotCut),
		string(JSON), string(Timeline), string(Audio), string(ClipSequence),
	}
}

// Parse resolves an export string. The attribute payload, when present,
// goes through the inline parser against the exporter's field spec.
func Parse(text string) (Export, error) {
	name, payload, _ := strings.Cut(text, ":")

	spec, ok := specs[Kind(name)]
	if !ok {
		return Export{}, fmt.Errorf("%w: '%s': export must be [%s]",
			clipcut.ErrSchema, name, strings.Join(Names(), ", "))
	}

	attrs, err := inline.Parse(spec, payload, inline.DirectCoercer{})
	if err != nil {
		return Export{}, fmt.Errorf("--export %s: %w", name, err)
	}

	return Export{Kind: Kind(name), Attrs: attrs}, nil
}

// OutputExt returns the file extension an export kind produces, or "" when
// the input container's extension is kept.
func (e Export) OutputExt() string {
	switch e.Kind {
	case Premiere:
		return ".xml"
	case FinalCutPro:
		return ".fcpxml"
	case ShotCut:
		return ".mlt"
	case JSON, Timeline:
		return ".json"
	case Audio:
		return ".wav"
	default:
		return ""
	}
}
