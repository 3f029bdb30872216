package export

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/clipcut/clipcut"
)

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		kind Kind
		api  string
	}{
		{text: "default", kind: Default},
		{text: "premiere", kind: Premiere},
		{text: "audio", kind: Audio},
		{text: "timeline", kind: Timeline, api: "1"},
		{text: "timeline:api=3", kind: Timeline, api: "3"},
		{text: "json:api=2", kind: JSON, api: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			ex, err := Parse(tt.text)
			assert.NoError(t, err)
			assert.Equal(t, tt.kind, ex.Kind)

			if tt.api != "" {
				assert.Equal(t, tt.api, ex.Attrs["api"].(string))
			}
		})
	}
}

func TestParseUnknownExporter(t *testing.T) {
	_, err := Parse("davinci")
	assert.IsError(t, err, clipcut.ErrSchema)
	assert.Contains(t, err.Error(), "export must be [")
	assert.Contains(t, err.Error(), "premiere")
}

func TestParseBadPayload(t *testing.T) {
	_, err := Parse("premiere:api=1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--export premiere")

	_, err = Parse("timeline:vapi=3")
	assert.IsError(t, err, clipcut.ErrSchema)
}

func TestOutputExt(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{Premiere, ".xml"},
		{FinalCutPro, ".fcpxml"},
		{ShotCut, ".mlt"},
		{JSON, ".json"},
		{Timeline, ".json"},
		{Audio, ".wav"},
		{Default, ""},
		{ClipSequence, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Export{Kind: tt.kind}.OutputExt())
	}
}
