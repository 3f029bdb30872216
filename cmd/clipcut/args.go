package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/clipcut/clipcut"
	"github.com/clipcut/clipcut/cliargs"
	"github.com/clipcut/clipcut/contract"
	"github.com/clipcut/clipcut/export"
)

// TimeRange is one start,end span cut out of the timeline.
type TimeRange struct {
	Start contract.Time
	End   contract.Time
}

// Rectangle is one rectangle drawn over the video for a span of time.
// The same geometry doubles as an ellipse's bounding box.
type Rectangle struct {
	Start   contract.Time
	Dur     contract.Time
	X1      int
	Y1      int
	X2      int
	Y2      int
	Fill    string
	Width   int
	Outline string
}

// Args is the fully resolved invocation: command line merged with config
// defaults, every value typed and every derived name computed.
type Args struct {
	Inputs []string

	Margin      contract.Margin
	EditMethod  string
	SilentSpeed float64
	VideoSpeed  float64
	CutOut      []TimeRange

	Rectangles []Rectangle
	Ellipses   []Rectangle

	Export             export.Export
	OutputFile         string
	SampleRate         int
	VideoCodec         string
	AudioCodec         string
	KeepTracksSeparate bool

	Progress       string
	Player         string
	FFmpegLocation string
	NoOpen         bool
	Preview        bool
	Quiet          bool
	Debug          bool
}

// buildArgs merges the parse result with config defaults. Command-line
// values always win; the config only fills what the user left unset.
func buildArgs(r *cliargs.Result, config *clipcut.Config) (*Args, error) {
	args := &Args{
		Inputs:      r.Strings("input"),
		EditMethod:  r.String("edit"),
		SilentSpeed: r.Float("silent_speed"),
		VideoSpeed:  r.Float("video_speed"),
		OutputFile:  r.String("output_file"),

		KeepTracksSeparate: r.Bool("keep_tracks_separate"),
		NoOpen:             r.Bool("no_open"),
		Preview:            r.Bool("preview"),
		Quiet:              r.Bool("quiet"),
		Debug:              r.Bool("debug"),
	}

	if m, ok := r.Get("margin").(contract.Margin); ok {
		args.Margin = m
	}

	args.VideoCodec = fallback(r.String("video_codec"), config.VideoCodec)
	args.AudioCodec = fallback(r.String("audio_codec"), config.AudioCodec)
	args.Progress = fallback(r.String("progress"), config.Progress)
	args.Player = fallback(r.String("player"), config.Player)
	args.FFmpegLocation = fallback(r.String("ffmpeg_location"), config.FFmpeg.Location)

	args.SampleRate = r.Int("sample_rate")
	if !r.Has("sample_rate") {
		args.SampleRate = config.SampleRate
	}

	ex, err := export.Parse(fallback(r.String("export"), config.Export))
	if err != nil {
		return nil, err
	}

	args.Export = ex

	for _, rec := range r.Records("cut_out") {
		args.CutOut = append(args.CutOut, TimeRange{
			Start: rec["start"].(contract.Time),
			End:   rec["end"].(contract.Time),
		})
	}

	args.Rectangles = toRectangles(r.Records("add_rectangle"))
	args.Ellipses = toRectangles(r.Records("add_ellipse"))

	if args.OutputFile == "" && len(args.Inputs) > 0 {
		args.OutputFile = outputName(args.Inputs[0], args.Export)
	}

	return args, nil
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}

	return value
}

// toRectangles lifts validated payload records into typed values. The
// inline parser has already enforced presence and contracts, so the type
// assertions here cannot fail.
func toRectangles(records []map[string]any) []Rectangle {
	out := make([]Rectangle, 0, len(records))

	for _, rec := range records {
		out = append(out, Rectangle{
			Start:   rec["start"].(contract.Time),
			Dur:     rec["dur"].(contract.Time),
			X1:      rec["x1"].(int),
			Y1:      rec["y1"].(int),
			X2:      rec["x2"].(int),
			Y2:      rec["y2"].(int),
			Fill:    rec["fill"].(string),
			Width:   rec["width"].(int),
			Outline: rec["outline"].(string),
		})
	}

	return out
}

// outputName derives the output path from the first input and the export
// target. Timeline exports replace the extension; media exports append
// _ALTERED so the input is never clobbered.
func outputName(input string, ex export.Export) string {
	root := strings.TrimSuffix(input, filepath.Ext(input))

	if newExt := ex.OutputExt(); newExt != "" {
		if ex.Kind == export.Audio {
			return root + "_ALTERED" + newExt
		}

		return root + newExt
	}

	ext := filepath.Ext(input)
	if ext == "" {
		return fmt.Sprintf("%s_ALTERED", root)
	}

	return root + "_ALTERED" + ext
}
