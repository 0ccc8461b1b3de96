package main

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-loot/droptable"
	"github.com/lixenwraith/vi-loot/parameter"
	"github.com/lixenwraith/vi-loot/spawn"
	"github.com/lixenwraith/vi-loot/vmath"
)

var (
	styleDefault = tcell.StyleDefault
	styleTitle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSource  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCone    = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
)

// rarityStyles colors instances by catalog rarity
var rarityStyles = [droptable.RarityCount]tcell.Style{
	droptable.RarityCommon:    tcell.StyleDefault.Foreground(tcell.ColorWhite),
	droptable.RarityUncommon:  tcell.StyleDefault.Foreground(tcell.ColorGreen),
	droptable.RarityRare:      tcell.StyleDefault.Foreground(tcell.ColorBlue),
	droptable.RarityEpic:      tcell.StyleDefault.Foreground(tcell.ColorPurple),
	droptable.RarityLegendary: tcell.StyleDefault.Foreground(tcell.ColorOrange),
}

// viewWidth is the map area left of the HUD
func (s *Sandbox) viewWidth() int {
	return max(s.width-parameter.HUDWidth, 0)
}

// project maps world X/Z to a map cell, Z grows upward
func (s *Sandbox) project(p vmath.Vec3) (x, y int, ok bool) {
	w := s.viewWidth()
	top := parameter.TopMargin
	bottom := s.height - parameter.BottomMargin
	cx := w / 2
	cy := top + (bottom-top)/2

	x = cx + int(math.Round(p[0]*parameter.CellsPerUnitX))
	y = cy - int(math.Round(p[2]*parameter.CellsPerUnitZ))
	ok = x >= 0 && x < w && y >= top && y < bottom
	return x, y, ok
}

func (s *Sandbox) draw() {
	s.screen.Clear()

	s.drawCones()
	s.drawInstances()
	s.drawSources()
	if x, y, ok := s.project(s.player.pos); ok {
		s.screen.SetContent(x, y, parameter.PlayerChar, nil, stylePlayer)
	}
	s.drawHUD()

	s.screen.Show()
}

// drawCones previews each throw direction as a short dotted ray
func (s *Sandbox) drawCones() {
	for _, src := range s.sources {
		origin, throw := src.disp.PreviewThrow()
		flat := vmath.Vec3{throw[0], 0, throw[2]}
		if vmath.V3IsZero(flat) {
			continue
		}
		dir := flat.Normalize()
		for step := 1; step <= 3; step++ {
			if x, y, ok := s.project(origin.Add(dir.Mul(float64(step)))); ok {
				s.screen.SetContent(x, y, '·', nil, styleCone)
			}
		}
	}
}

func (s *Sandbox) drawInstances() {
	s.world.Each(func(inst *spawn.Instance) {
		x, y, ok := s.project(inst.Position)
		if !ok {
			return
		}
		style := styleDefault
		if r := s.rarity[inst.Template]; r < droptable.RarityCount {
			style = rarityStyles[r]
		}
		if inst.Grounded || !inst.Physics {
			style = style.Dim(true)
		}
		s.screen.SetContent(x, y, glyph(inst.Template), nil, style)
	})
}

// glyph is the first rune of the template id
func glyph(id droptable.TemplateID) rune {
	r, _ := utf8.DecodeRuneInString(string(id))
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

func (s *Sandbox) drawSources() {
	for _, src := range s.sources {
		origin, _ := src.disp.PreviewThrow()
		x, y, ok := s.project(origin)
		if !ok {
			continue
		}
		s.screen.SetContent(x, y, parameter.SourceChar, nil, styleSource)
		s.drawText(x+2, y, s.viewWidth()-x-2, src.name, styleDim)
	}
}

func (s *Sandbox) drawHUD() {
	left := s.viewWidth()
	width := s.width - left

	title := fmt.Sprintf("%s  live %d  spawned %d", s.scene.Name, s.world.Len(), s.world.Spawned())
	s.drawText(0, 0, s.width, title, styleTitle)

	row := parameter.TopMargin
	for i, src := range s.sources {
		mark := ' '
		if i == s.selected {
			mark = parameter.SelectedChar
		}
		cfg := src.disp.Config()
		limit := "∞"
		if !cfg.Repetitions.Unlimited {
			limit = fmt.Sprint(cfg.Repetitions.Count)
		}
		line := fmt.Sprintf("%c %s %d/%s q%d %s", mark, src.name, src.disp.TotalReps(), limit, len(src.disp.Pending()), src.disp.State())
		if t := src.disp.Table(); t != nil && t.Exhausted() {
			line += " exhausted"
		}
		s.drawText(left, row, width, line, styleDefault)
		row++
	}

	row++
	for _, line := range s.status.Lines() {
		if row >= s.height-parameter.BottomMargin-parameter.MessageLines {
			break
		}
		s.drawText(left, row, width, line, styleDim)
		row++
	}

	row = s.height - parameter.BottomMargin - len(s.messages)
	for _, m := range s.messages {
		s.drawText(left, row, width, m.text, styleSource)
		row++
	}

	s.drawText(0, s.height-1, s.width, parameter.KeyHelp, styleDim)
}

// drawText writes text truncated to width display cells
func (s *Sandbox) drawText(x, y, width int, text string, style tcell.Style) {
	if width <= 0 || y < 0 || y >= s.height {
		return
	}
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, parameter.EllipsisStr)
	}
	for _, r := range text {
		s.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
