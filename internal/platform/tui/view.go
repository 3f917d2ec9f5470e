package tui

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/road-racer/internal/core"
	"github.com/vovakirdan/road-racer/internal/engine"
	"github.com/vovakirdan/road-racer/internal/race"
)

// hudRows is the number of rows above the playfield.
const hudRows = 1

// HUD is the status line drawn above the road.
type HUD struct {
	Mode      string
	Player    string
	HighScore int
	Paused    bool
	Status    string // Transient message, e.g. "config reloaded"
}

// Playfield returns the viewport the world is projected onto.
func Playfield(scr *core.Screen, window cp.Vector) core.Viewport {
	return core.Viewport{
		WorldW:  window.X,
		WorldH:  window.Y,
		ScreenW: scr.Width(),
		ScreenH: core.Max(scr.Height()-hudRows, 1),
	}
}

// DrawRace renders the world, its labels and the HUD into scr.
func DrawRace(scr *core.Screen, e *engine.Engine, st race.GameState, hud HUD) {
	scr.Clear()
	if e == nil {
		return
	}
	vp := Playfield(scr, e.Window)

	sprites := append([]*engine.Sprite(nil), e.Sprites()...)
	sort.SliceStable(sprites, func(i, j int) bool { return sprites[i].Layer < sprites[j].Layer })
	for _, s := range sprites {
		drawSprite(scr, vp, s)
	}

	for _, t := range e.Texts() {
		if t.Name == race.GameOverLabel || t.Value == "" {
			continue
		}
		col, row := vp.Project(t.Translation.X, t.Translation.Y)
		col -= utf8.RuneCountInString(t.Value) / 2
		scr.Text(col, row+hudRows, t.Value, core.ColorYellow)
	}

	drawHUD(scr, st, hud)

	switch {
	case st.Lost:
		label := "Game Over"
		if t, ok := e.LookupText(race.GameOverLabel); ok {
			label = t.Value
		}
		drawBanner(scr, label, fmt.Sprintf("Dodged %d", st.Score), "r restart  b back  q quit")
	case hud.Paused:
		drawBanner(scr, "PAUSED", "", "p resume  q quit")
	}
}

func drawSprite(scr *core.Screen, vp core.Viewport, s *engine.Sprite) {
	info := s.Preset.Info()
	bb := s.Bounds()
	col, row := vp.Project(bb.L, bb.T)
	w, h := vp.Cells(bb.R-bb.L, bb.T-bb.B)
	r := core.NewRect(col, row+hudRows, w, h)
	scr.Fill(r, info.Glyph, info.Color)

	// The car's nose shows its tilt.
	if s.Kind == engine.KindPlayer && w > 1 {
		nose := '▶'
		switch {
		case s.Rotation > 0:
			nose = '◥'
		case s.Rotation < 0:
			nose = '◢'
		}
		for y := r.Y; y < r.Bottom(); y++ {
			scr.Put(r.Right()-1, y, nose, core.ColorBrightWhite)
		}
	}
}

func drawHUD(scr *core.Screen, st race.GameState, hud HUD) {
	scr.Fill(core.NewRect(0, 0, scr.Width(), hudRows), ' ', core.ColorDefault)
	left := fmt.Sprintf(" SCORE %d  HI %d  HP %d", st.Score, core.Max(hud.HighScore, int(st.Score)), st.Health)
	scr.Text(0, 0, left, core.ColorBrightWhite)

	right := hud.Mode
	if hud.Player != "" {
		right = hud.Player + " · " + right
	}
	if hud.Status != "" {
		right = hud.Status + "  " + right
	}
	right += " "
	scr.Text(scr.Width()-utf8.RuneCountInString(right), 0, right, core.ColorGray)
}

// drawBanner draws a boxed message in the middle of the playfield.
func drawBanner(scr *core.Screen, title, detail, hint string) {
	width := core.Max(utf8.RuneCountInString(title), utf8.RuneCountInString(detail))
	width = core.Max(width, utf8.RuneCountInString(hint)) + 4
	height := 5
	if detail == "" {
		height = 4
	}

	x := (scr.Width() - width) / 2
	y := hudRows + (scr.Height()-hudRows-height)/2
	box := core.NewRect(x, y, width, height)
	scr.Fill(box, ' ', core.ColorDefault)
	scr.Box(box, core.ColorGray)

	center := func(row int, text string, c core.Color) {
		scr.Text(x+(width-utf8.RuneCountInString(text))/2, row, text, c)
	}
	center(y+1, title, core.ColorBrightRed)
	if detail != "" {
		center(y+2, detail, core.ColorBrightWhite)
	}
	center(y+height-2, hint, core.ColorGray)
}
