package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/road-racer/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(12, 2)
	scr.Text(0, 0, "HP", core.ColorBrightRed)
	scr.Text(3, 0, "5", core.ColorYellow)
	scr.Text(0, 1, "road", core.ColorDefault)

	out := RenderScreen(scr)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"HP", "5", "road"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output %q", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("No style for color %d", c)
		}
	}
}
