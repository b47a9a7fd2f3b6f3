package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/course-arcade/internal/core"
)

func TestRenderSceneStatusLine(t *testing.T) {
	screen := core.NewScreen(20, 6)
	sc := core.NewScene(20, 6)
	sc.Add(core.FillRect(core.NewBox(0, 0, 20, 1), core.ColorRed))

	out := ansi.Strip(RenderScene(screen, sc, "sound off"))
	rows := strings.Split(out, "\n")

	if len(rows) != 6 {
		t.Fatalf("rendered %d rows, expected 6", len(rows))
	}
	for i, r := range rows {
		if got := len([]rune(r)); got != 20 {
			t.Errorf("row %d is %d cells wide, expected 20", i, got)
		}
	}
	if !strings.HasPrefix(rows[5], " sound off") {
		t.Errorf("bottom row = %q, expected the status", rows[5])
	}
	if strings.TrimSpace(rows[0]) == "" {
		t.Error("top row should hold the filled rect")
	}
}

func TestRenderSceneWithoutStatus(t *testing.T) {
	screen := core.NewScreen(10, 3)
	out := ansi.Strip(RenderScene(screen, core.NewScene(10, 3), ""))

	if out != screen.String() {
		t.Errorf("styled output %q differs from the plain screen %q", out, screen.String())
	}
}
