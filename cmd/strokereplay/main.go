// Command strokereplay replays a recorded pointer script through a canvas
// and saves the result as PNG.
//
// A script has one command per line:
//
//	resize 640 480
//	down 10 10
//	move 20 10
//	up 20 10
//
// Blank lines and lines starting with '#' are ignored. The canvas starts at
// the -width and -height flag size.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/minipaint"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stderr io.Writer) error {
	fs := flag.NewFlagSet("strokereplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		width      = fs.Int("width", 800, "canvas width")
		height     = fs.Int("height", 600, "canvas height")
		input      = fs.String("input", "-", "script file, - for stdin")
		output     = fs.String("output", "replay.png", "output file")
		tolerance  = fs.Float64("tolerance", minipaint.DefaultTouchTolerance, "wander slop in pixels")
		background = fs.String("background", "#512DA8", "background color")
		ink        = fs.String("color", "#FFEB3B", "ink color")
		verbose    = fs.Bool("v", false, "log stroke and resize events")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		minipaint.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	bg, err := minipaint.ParseHex(*background)
	if err != nil {
		return fmt.Errorf("-background: %w", err)
	}
	fg, err := minipaint.ParseHex(*ink)
	if err != nil {
		return fmt.Errorf("-color: %w", err)
	}

	src := stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	steps, err := parseScript(src)
	if err != nil {
		return err
	}

	c, err := minipaint.NewCanvas(*width, *height,
		minipaint.WithPaint(minipaint.DefaultPaint().WithColor(fg)),
		minipaint.WithSurfaceOptions(minipaint.WithBackground(bg)),
		minipaint.WithTrackerOptions(minipaint.WithTolerance(*tolerance)),
	)
	if err != nil {
		return err
	}
	if err := replay(c, steps); err != nil {
		return err
	}

	img, err := c.Snapshot()
	if err != nil {
		return err
	}
	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Printf("Replayed %d steps into %s (%dx%d)\n", len(steps), *output, c.Width(), c.Height())
	return nil
}

// step is one script command. Resize steps carry their size in w and h.
type step struct {
	line   int
	resize bool
	w, h   int
	event  minipaint.Event
}

var errSyntax = errors.New("strokereplay: syntax error")

func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s, err := parseStep(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		s.line = n
		steps = append(steps, s)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return steps, nil
}

func parseStep(line string) (step, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return step{}, fmt.Errorf("%w: want \"<command> <x> <y>\", got %q", errSyntax, line)
	}

	if fields[0] == "resize" {
		w, errW := strconv.Atoi(fields[1])
		h, errH := strconv.Atoi(fields[2])
		if err := errors.Join(errW, errH); err != nil {
			return step{}, fmt.Errorf("%w: %v", errSyntax, err)
		}
		return step{resize: true, w: w, h: h}, nil
	}

	var action minipaint.Action
	switch fields[0] {
	case "down":
		action = minipaint.ActionDown
	case "move":
		action = minipaint.ActionMove
	case "up":
		action = minipaint.ActionUp
	default:
		return step{}, fmt.Errorf("%w: unknown command %q", errSyntax, fields[0])
	}
	x, errX := strconv.ParseFloat(fields[1], 64)
	y, errY := strconv.ParseFloat(fields[2], 64)
	if err := errors.Join(errX, errY); err != nil {
		return step{}, fmt.Errorf("%w: %v", errSyntax, err)
	}
	if !minipaint.Pt(x, y).IsFinite() {
		return step{}, fmt.Errorf("%w: coordinates must be finite, got %q", errSyntax, line)
	}
	return step{event: minipaint.Event{Action: action, X: x, Y: y}}, nil
}

func replay(c *minipaint.Canvas, steps []step) error {
	for _, s := range steps {
		if s.resize {
			if err := c.Resize(s.w, s.h); err != nil {
				return fmt.Errorf("line %d: %w", s.line, err)
			}
			continue
		}
		c.HandleEvent(s.event)
	}
	return nil
}
