// Command minipaint opens a window to draw freehand strokes in.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/gogpu/minipaint"
	"github.com/gogpu/minipaint/internal/fynehost"
)

func main() {
	var (
		tolerance  = flag.Float64("tolerance", minipaint.DefaultTouchTolerance, "wander slop in pixels")
		background = flag.String("background", "#512DA8", "background color")
		ink        = flag.String("color", "#FFEB3B", "ink color")
		width      = flag.Float64("stroke", minipaint.StrokeWidth, "stroke width in pixels")
		verbose    = flag.Bool("v", false, "log stroke and resize events")
	)
	flag.Parse()

	if *verbose {
		minipaint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	bg, err := minipaint.ParseHex(*background)
	if err != nil {
		log.Fatalf("Invalid -background: %v", err)
	}
	fg, err := minipaint.ParseHex(*ink)
	if err != nil {
		log.Fatalf("Invalid -color: %v", err)
	}

	a := app.New()
	board, err := fynehost.NewBoard(
		minipaint.WithPaint(minipaint.DefaultPaint().WithColor(fg).WithWidth(*width)),
		minipaint.WithSurfaceOptions(minipaint.WithBackground(bg)),
		minipaint.WithTrackerOptions(minipaint.WithTolerance(*tolerance)),
	)
	if err != nil {
		log.Fatalf("Failed to create board: %v", err)
	}

	w := a.NewWindow("minipaint")
	w.SetContent(board)
	w.Resize(fyne.NewSize(800, 600))
	w.ShowAndRun()
}
