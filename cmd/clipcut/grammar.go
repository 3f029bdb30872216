package main

import (
	"github.com/clipcut/clipcut"
	"github.com/clipcut/clipcut/cliargs"
	"github.com/clipcut/clipcut/contract"
	"github.com/clipcut/clipcut/inline"
)

const description = `clipcut is an automatic video and audio editor: it cuts out the silent or
unchanged sections of media, then hands the result to your encoder or editor.

Run:
    clipcut --help

To see all the available options.`

// mustValue coerces a default value at grammar-definition time. A bad
// default is a programmer error.
func mustValue(c contract.Contract, raw string) any {
	v, err := c.Parse(raw)
	if err != nil {
		panic(err)
	}

	return v
}

// rectangleSpec is the sub-grammar of --add-rectangle: when and where to
// draw, then how to paint it.
var rectangleSpec = inline.NewSpec("rectangle",
	inline.Req("start", contract.TimeValue),
	inline.Req("dur", contract.TimeValue),
	inline.Req("x1", contract.Int),
	inline.Req("y1", contract.Int),
	inline.Req("x2", contract.Int),
	inline.Req("y2", contract.Int),
	inline.Opt("fill", contract.Color, "#c4c4c4"),
	inline.Opt("width", contract.Int, 0),
	inline.Opt("outline", contract.Color, "blue"),
)

// ellipseSpec matches rectangleSpec; the geometry is the bounding box.
var ellipseSpec = inline.NewSpec("ellipse",
	inline.Req("start", contract.TimeValue),
	inline.Req("dur", contract.TimeValue),
	inline.Req("x1", contract.Int),
	inline.Req("y1", contract.Int),
	inline.Req("x2", contract.Int),
	inline.Req("y2", contract.Int),
	inline.Opt("fill", contract.Color, "#c4c4c4"),
	inline.Opt("width", contract.Int, 0),
	inline.Opt("outline", contract.Color, "blue"),
)

// cutOutSpec is one start,end range removed from the timeline.
var cutOutSpec = inline.NewSpec("cut-out",
	inline.Req("start", contract.TimeValue),
	inline.Req("end", contract.TimeValue),
)

// buildGrammar declares the whole CLI surface. Called once at startup;
// the resulting grammar is read-only.
func buildGrammar() *cliargs.Parser {
	p := cliargs.New(clipcut.Name, clipcut.Version, description)

	p.AddText("Editing Options:")
	p.AddOption(cliargs.Option{
		Names:    []string{"--margin", "--frame-margin", "-m"},
		Contract: contract.MarginValue,
		Default:  mustValue(contract.MarginValue, "0.2sec"),
		Help:     "Set how many frames or seconds to keep around the loud sections",
	})
	p.AddOption(cliargs.Option{
		Names:    []string{"--edit"},
		Contract: contract.String,
		Default:  "audio",
		Help:     "Set the method used to decide which sections stay",
	})
	p.AddOption(cliargs.Option{
		Names:    []string{"--silent-speed", "-s"},
		Contract: contract.Speed,
		Default:  99999.0,
		Help:     "Set the speed of sections marked silent (99999 drops them)",
	})
	p.AddOption(cliargs.Option{
		Names:    []string{"--video-speed", "--sounded-speed", "-v-speed"},
		Contract: contract.Speed,
		Default:  1.0,
		Help:     "Set the speed of sections that stay",
	})
	p.AddOption(cliargs.Option{
		Names:  []string{"--cut-out"},
		Kind:   cliargs.Structured,
		Struct: &cutOutSpec,
		Help:   "Remove these start,end sections no matter what",
		Manual: "Times are frames (86), seconds (1.5sec), or percent (10%).",
	})

	p.AddBlank()
	p.AddText("Object Options:")
	p.AddOption(cliargs.Option{
		Names:  []string{"--add-rectangle"},
		Kind:   cliargs.Structured,
		Struct: &rectangleSpec,
		Help:   "Draw a rectangle over the video for a span of time",
	})
	p.AddOption(cliargs.Option{
		Names:  []string{"--add-ellipse"},
		Kind:   cliargs.Structured,
		Struct: &ellipseSpec,
		Help:   "Draw an ellipse inside the given bounding box",
	})

	p.AddBlank()
	p.AddText("Export Options:")
	p.AddOption(cliargs.Option{
		Names:    []string{"--export", "-ex"},
		Contract: contract.String,
		Help:     "Choose the export target, e.g. premiere or timeline:api=3",
	})
	p.AddOption(cliargs.Option{
		Names:    []string{"--output-file", "--output", "-o"},
		Contract: contract.String,
		Help:     "Set the name and path of the new output file",
	})
	p.AddOption(cliargs.Option{
		Names:    []string{"--sample-rate", "-r"},
		Contract: contract.SampleRate,
		Help:     "Set the sample rate of the audio, e.g. 48000 or 44.1 kHz",
	})
	p.AddOption(cliargs.Option{
		Names:    []string{"--video-codec", "-vcodec"},
		Contract: contract.String,
		Help:     "Set the video codec, or auto/copy",
	})
	p.AddOption(cliargs.Option{
		Names:    []string{"--audio-codec", "-acodec"},
		Contract: contract.String,
		Help:     "Set the audio codec, or auto/copy/unset",
	})
	p.AddOption(cliargs.Option{
		Names: []string{"--keep-tracks-separate"},
		Kind:  cliargs.Boolean,
		Help:  "Don't mix audio tracks into one when exporting",
	})

	p.AddBlank()
	p.AddText("Utility Options:")
	p.AddOption(cliargs.Option{
		Names:    []string{"--progress"},
		Contract: contract.String,
		Choices:  []string{"modern", "classic", "ascii", "machine", "none"},
		Help:     "Set the progress bar style",
	})
	p.AddOption(cliargs.Option{
		Names:    []string{"--config"},
		Contract: contract.String,
		Help:     "Set the path of the project config file",
	})
	p.AddOption(cliargs.Option{
		Names:    []string{"--ffmpeg-location"},
		Contract: contract.String,
		Help:     "Set a custom path to the ffmpeg binary",
	})
	p.AddOption(cliargs.Option{
		Names:    []string{"--player"},
		Contract: contract.String,
		Help:     "Set the command used to open the output file",
	})
	p.AddOption(cliargs.Option{
		Names: []string{"--no-open"},
		Kind:  cliargs.Boolean,
		Help:  "Don't open the output file after editing is done",
	})
	p.AddOption(cliargs.Option{
		Names: []string{"--preview"},
		Kind:  cliargs.Boolean,
		Help:  "Show stats on how the input will be cut without editing",
	})
	p.AddOption(cliargs.Option{
		Names: []string{"--quiet", "-q"},
		Kind:  cliargs.Boolean,
		Help:  "Display less output",
	})
	p.AddOption(cliargs.Option{
		Names: []string{"--debug"},
		Kind:  cliargs.Boolean,
		Help:  "Show the resolved configuration and debug info",
	})

	p.AddBlank()
	p.AddRequired(cliargs.Required{
		Name:     "input",
		Plural:   true,
		Contract: contract.String,
		Help:     "the path(s) to the file(s) you want edited",
	})

	return p
}
