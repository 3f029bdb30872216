package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shopspring/decimal"

	"github.com/clipcut/clipcut"
	"github.com/clipcut/clipcut/contract"
	"github.com/clipcut/clipcut/export"
)

func parseArgs(t *testing.T, argv ...string) *Args {
	t.Helper()

	parser := buildGrammar()
	parser.SetOutput(io.Discard)

	result, err := parser.Parse(argv)
	assert.NoError(t, err)

	config, err := clipcut.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NoError(t, err)

	args, err := buildArgs(result, config)
	assert.NoError(t, err)

	return args
}

func TestBuildArgsDefaults(t *testing.T) {
	args := parseArgs(t, "video.mp4")

	assert.Equal(t, []string{"video.mp4"}, args.Inputs)
	assert.Equal(t, "audio", args.EditMethod)
	assert.Equal(t, 99999.0, args.SilentSpeed)
	assert.Equal(t, 1.0, args.VideoSpeed)
	assert.Equal(t, "auto", args.VideoCodec)
	assert.Equal(t, "auto", args.AudioCodec)
	assert.Equal(t, "modern", args.Progress)
	assert.Equal(t, export.Default, args.Export.Kind)
	assert.Equal(t, "video_ALTERED.mp4", args.OutputFile)

	// 0.2sec on both sides.
	assert.Equal(t, contract.UnitSeconds, args.Margin.Start.Unit)
	assert.True(t, args.Margin.Start.Value.Equal(decimal.RequireFromString("0.2")))
	assert.True(t, args.Margin.End.Value.Equal(args.Margin.Start.Value))
}

func TestBuildArgsOverrides(t *testing.T) {
	args := parseArgs(t, "video.mp4",
		"--margin", "10,2sec",
		"--video-codec", "libx264",
		"--export", "timeline:api=3",
		"-o", "cut.mp4",
		"--sample-rate", "44.1 kHz",
	)

	assert.Equal(t, contract.UnitFrames, args.Margin.Start.Unit)
	assert.Equal(t, "libx264", args.VideoCodec)
	assert.Equal(t, export.Timeline, args.Export.Kind)
	assert.Equal(t, "3", args.Export.Attrs["api"].(string))
	assert.Equal(t, "cut.mp4", args.OutputFile)
	assert.Equal(t, 44100, args.SampleRate)
}

func TestBuildArgsObjects(t *testing.T) {
	args := parseArgs(t, "video.mp4",
		"--cut-out", "10,20", "--cut-out", "1min,2min",
		"--add-rectangle", "0,30,5,10,15,20",
		"--add-rectangle", "60,30,5,10,15,20,fill=#fff,width=2",
	)

	assert.Equal(t, 2, len(args.CutOut))
	assert.Equal(t, contract.UnitFrames, args.CutOut[0].Start.Unit)
	assert.Equal(t, contract.UnitSeconds, args.CutOut[1].Start.Unit)

	assert.Equal(t, 2, len(args.Rectangles))
	assert.Equal(t, "#c4c4c4", args.Rectangles[0].Fill)
	assert.Equal(t, "#fff", args.Rectangles[1].Fill)
	assert.Equal(t, 2, args.Rectangles[1].Width)
	assert.Equal(t, 5, args.Rectangles[0].X1)
}

func TestOutputName(t *testing.T) {
	tests := []struct {
		input    string
		export   export.Kind
		expected string
	}{
		{"movie.mp4", export.Default, "movie_ALTERED.mp4"},
		{"movie", export.Default, "movie_ALTERED"},
		{"movie.mp4", export.Premiere, "movie.xml"},
		{"movie.mp4", export.FinalCutPro, "movie.fcpxml"},
		{"movie.mp4", export.Timeline, "movie.json"},
		{"movie.mp4", export.Audio, "movie_ALTERED.wav"},
		{"clips/movie.mkv", export.Default, "clips/movie_ALTERED.mkv"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, outputName(tt.input, export.Export{Kind: tt.export}))
		})
	}
}

func TestGrammarHasNoCollisions(t *testing.T) {
	// buildGrammar panics on a duplicate or malformed declaration.
	assert.NotZero(t, buildGrammar())
}
