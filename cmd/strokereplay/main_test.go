package main

import (
	"errors"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/minipaint"
)

func TestParseScript(t *testing.T) {
	script := `# a short stroke
down 10 10

move 20.5 10
up 20.5 10
resize 64 32
`
	steps, err := parseScript(strings.NewReader(script))
	if err != nil {
		t.Fatalf("parseScript() error = %v", err)
	}
	want := []step{
		{line: 2, event: minipaint.Down(10, 10)},
		{line: 4, event: minipaint.Move(20.5, 10)},
		{line: 5, event: minipaint.Up(20.5, 10)},
		{line: 6, resize: true, w: 64, h: 32},
	}
	if len(steps) != len(want) {
		t.Fatalf("got %d steps, want %d", len(steps), len(want))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step %d = %+v, want %+v", i, steps[i], want[i])
		}
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{"unknown command", "tap 1 2"},
		{"missing coordinate", "down 1"},
		{"extra field", "move 1 2 3"},
		{"bad number", "move x 2"},
		{"fractional resize", "resize 10.5 20"},
		{"infinite x", "move inf 2"},
		{"negative infinity", "move 1 -Inf"},
		{"not a number", "up NaN 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseScript(strings.NewReader("down 0 0\n" + tt.script))
			if !errors.Is(err, errSyntax) {
				t.Fatalf("parseScript() error = %v, want errSyntax", err)
			}
			if !strings.HasPrefix(err.Error(), "line 2:") {
				t.Errorf("error %q does not name line 2", err)
			}
		})
	}
}

func TestRunWritesPNG(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")
	script := "down 20 50\nmove 60 50\nmove 100 50\nup 100 50\n"

	err := run([]string{"-width", "160", "-height", "100", "-output", out, "-color", "#FF0000"},
		strings.NewReader(script), io.Discard)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 160 || img.Bounds().Dy() != 100 {
		t.Errorf("bounds = %v, want 160x100", img.Bounds())
	}
	if got := minipaint.FromColor(img.At(60, 50)).NRGBA(); got.R < 0xF0 || got.G > 0x10 {
		t.Errorf("pixel (60, 50) = %v, want red ink", got)
	}
	if got := minipaint.FromColor(img.At(140, 90)).NRGBA(); got != minipaint.Hex("#512DA8").NRGBA() {
		t.Errorf("pixel (140, 90) = %v, want background", got)
	}
}

func TestRunResizeClearsInk(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.png")
	script := "down 10 10\nmove 50 50\nresize 30 20\n"

	if err := run([]string{"-output", out}, strings.NewReader(script), io.Discard); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	bg := minipaint.Hex("#512DA8").NRGBA()
	for y := 0; y < 20; y++ {
		for x := 0; x < 30; x++ {
			if got := minipaint.FromColor(img.At(x, y)).NRGBA(); got != bg {
				t.Fatalf("pixel (%d, %d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestRunRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad color", []string{"-color", "#12"}},
		{"negative size", []string{"-width", "-1"}},
		{"missing file", []string{"-input", filepath.Join(t.TempDir(), "nope.txt")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "-output", filepath.Join(t.TempDir(), "x.png"))
			if err := run(args, strings.NewReader(""), io.Discard); err == nil {
				t.Error("run() error = nil, want failure")
			}
		})
	}
}
