package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/clipcut/clipcut"
)

// Runner is the boundary to the media pipeline: it consumes one resolved
// invocation and performs the edit. The engine lives outside this
// repository; the built-in implementations only report the plan.
type Runner interface {
	Run(args *Args, sess *session) error
}

// session is one editing run: a private temp directory that pipeline
// stages write intermediate files into, removed when the run ends.
type session struct {
	tempDir string
}

func newSession(config *clipcut.Config) (*session, error) {
	root := config.TempRoot
	if root == "" {
		root = os.TempDir()
	}

	dir := filepath.Join(root, "clipcut-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create temp directory: %w", err)
	}

	return &session{tempDir: dir}, nil
}

func (s *session) close() {
	os.RemoveAll(s.tempDir)
}

// run owns the session lifecycle and hands the invocation to a Runner.
func run(args *Args, config *clipcut.Config) error {
	if len(args.Inputs) == 0 {
		return fmt.Errorf("you need to give clipcut an input file")
	}

	sess, err := newSession(config)
	if err != nil {
		return err
	}
	defer sess.close()

	var runner Runner = &summaryRunner{}
	if args.Preview {
		runner = &previewRunner{}
	}

	return runner.Run(args, sess)
}

// summaryRunner reports what the edit will produce. It stands in for the
// encoding pipeline, which consumes the same Args.
type summaryRunner struct{}

func (summaryRunner) Run(args *Args, sess *session) error {
	if args.Debug {
		printDebug(args, sess)
	}

	if args.Quiet {
		return nil
	}

	heading := color.New(color.FgCyan, color.Bold)
	for _, input := range args.Inputs {
		heading.Printf("%s\n", input)
	}

	fmt.Printf("export: %s\noutput: %s\n", args.Export.Kind, args.OutputFile)

	return nil
}

// previewRunner shows how the input would be cut without producing output.
type previewRunner struct{}

func (previewRunner) Run(args *Args, sess *session) error {
	if args.Debug {
		printDebug(args, sess)
	}

	color.New(color.Bold).Println("Preview")

	fmt.Printf("inputs: %d\n", len(args.Inputs))
	fmt.Printf("explicit cuts: %d\n", len(args.CutOut))
	fmt.Printf("rectangles: %d, ellipses: %d\n", len(args.Rectangles), len(args.Ellipses))

	return nil
}

func printDebug(args *Args, sess *session) {
	fmt.Printf("%s version %s\n", clipcut.Name, clipcut.Version)
	fmt.Printf("temp dir: %s\n", sess.tempDir)
	fmt.Printf("edit method: %s\n", args.EditMethod)
	fmt.Printf("margin: %v,%v\n", args.Margin.Start, args.Margin.End)
	fmt.Printf("speeds: silent %v, video %v\n", args.SilentSpeed, args.VideoSpeed)
	fmt.Printf("codecs: video %s, audio %s\n", args.VideoCodec, args.AudioCodec)
	fmt.Printf("ffmpeg: %s\n", args.FFmpegLocation)
}
