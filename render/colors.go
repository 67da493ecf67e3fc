package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/netrunner/components"
)

// RGB color definitions for the board
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 18)    // Near-black blue
	RgbText       = tcell.NewRGBColor(0, 230, 200)   // Cyan terminal text
	RgbDim        = tcell.NewRGBColor(70, 90, 100)   // Muted gray-cyan
	RgbTitle      = tcell.NewRGBColor(255, 0, 110)   // Hot magenta
	RgbBorder     = tcell.NewRGBColor(0, 150, 170)   // Teal frame
	RgbSuccess    = tcell.NewRGBColor(50, 255, 120)  // Neon green
	RgbFailure    = tcell.NewRGBColor(255, 60, 60)   // Alarm red
	RgbWarning    = tcell.NewRGBColor(255, 200, 0)   // Amber
	RgbSelected   = tcell.NewRGBColor(255, 255, 255) // White cursor
	RgbTarget     = tcell.NewRGBColor(40, 60, 20)    // Dark olive for valid targets
	RgbOverlayBg  = tcell.NewRGBColor(25, 20, 45)    // Deep violet panel
	RgbHighlight  = tcell.NewRGBColor(80, 0, 60)     // Region spotlight
	RgbTraceFill  = tcell.NewRGBColor(255, 60, 60)   // Trace meter fill
	RgbPowerFill  = tcell.NewRGBColor(0, 180, 255)   // Power meter fill
)

// Palette is the set of styles renderers draw with
type Palette struct {
	Color bool

	Base      tcell.Style
	Text      tcell.Style
	Dim       tcell.Style
	Title     tcell.Style
	Border    tcell.Style
	Success   tcell.Style
	Failure   tcell.Style
	Warning   tcell.Style
	Selected  tcell.Style
	Overlay   tcell.Style
	TraceFill tcell.Style
	PowerFill tcell.Style
}

// NewPalette returns the RGB palette, or an attribute-only palette when color is false
func NewPalette(color bool) *Palette {
	if !color {
		base := tcell.StyleDefault
		return &Palette{
			Base:      base,
			Text:      base,
			Dim:       base.Dim(true),
			Title:     base.Bold(true),
			Border:    base,
			Success:   base.Bold(true),
			Failure:   base.Bold(true),
			Warning:   base.Bold(true),
			Selected:  base.Reverse(true),
			Overlay:   base,
			TraceFill: base.Reverse(true),
			PowerFill: base.Reverse(true),
		}
	}

	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
	return &Palette{
		Color:     true,
		Base:      base,
		Text:      base,
		Dim:       base.Foreground(RgbDim),
		Title:     base.Foreground(RgbTitle).Bold(true),
		Border:    base.Foreground(RgbBorder),
		Success:   base.Foreground(RgbSuccess).Bold(true),
		Failure:   base.Foreground(RgbFailure).Bold(true),
		Warning:   base.Foreground(RgbWarning),
		Selected:  base.Foreground(RgbBackground).Background(RgbSelected),
		Overlay:   tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbText),
		TraceFill: base.Foreground(RgbTraceFill),
		PowerFill: base.Foreground(RgbPowerFill),
	}
}

// Target marks a cell as a valid target of the selected command
func (p *Palette) Target(s tcell.Style) tcell.Style {
	if !p.Color {
		return s.Underline(true)
	}
	return s.Background(RgbTarget)
}

// Spotlight marks a cell inside the region the tutorial points at
func (p *Palette) Spotlight(s tcell.Style) tcell.Style {
	if !p.Color {
		return s.Bold(true)
	}
	return s.Background(RgbHighlight)
}

// LayerStyle maps a layer's animation phase to its text style
func (p *Palette) LayerStyle(breached bool, v components.VisualState) tcell.Style {
	switch {
	case v == components.VisualAttacking:
		return p.Warning
	case v == components.VisualFailed:
		return p.Failure
	case breached || v == components.VisualSucceeded:
		return p.Success
	}
	return p.Text
}
