package renderers

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/netrunner/constants"
	"github.com/lixenwraith/netrunner/game"
	"github.com/lixenwraith/netrunner/input"
	"github.com/lixenwraith/netrunner/locale"
	"github.com/lixenwraith/netrunner/render"
)

type nullSurface struct{ w, h int }

func (n nullSurface) SetContent(int, int, rune, []rune, tcell.Style) {}
func (n nullSurface) Size() (int, int)                               { return n.w, n.h }
func (n nullSurface) Show()                                          {}
func (n nullSurface) Sync()                                          {}

// frame renders one full frame and returns its rows
func frame(t *testing.T, g *game.Game, ui input.State) []string {
	t.Helper()
	palette := render.NewPalette(true)
	o := render.NewRenderOrchestrator(nullSurface{w: 100, h: 32}, palette)
	RegisterAll(o)

	w, h := o.Size()
	audio := render.AudioView{Available: true, Enabled: true, Volume: 0.3}
	o.RenderFrame(render.NewRenderContext(g.Snapshot(), ui, audio, palette, w, h))

	rows := make([]string, h)
	for y := range rows {
		rows[y] = o.Buffer().Row(y)
	}
	return rows
}

func screenText(rows []string) string {
	return strings.Join(rows, "\n")
}

func TestMenuFrame(t *testing.T) {
	g := game.New(nil, nil)
	text := screenText(frame(t, g, input.State{MenuIndex: input.MenuDirect}))

	assert.Contains(t, text, constants.GameTitle)
	assert.Contains(t, text, "> "+locale.Get(locale.MenuDirect)+" <")
	assert.Contains(t, text, locale.Get(locale.MenuTutorial))
	assert.Contains(t, text, locale.Get(locale.MenuQuoteAuthor))
	assert.NotContains(t, text, constants.HeaderBanner)
}

func TestBoardFrame(t *testing.T) {
	g := game.New(nil, nil)
	g.StartDirect()
	rows := frame(t, g, input.State{})
	text := screenText(rows)

	assert.Contains(t, rows[0], constants.HeaderBanner)
	assert.Contains(t, rows[1], "0/100")
	assert.Contains(t, rows[2], "10/10")
	for _, name := range []string{"Firewall", "Encryption", "Neural ICE", "Black ICE"} {
		assert.Contains(t, text, name)
	}
	assert.Contains(t, text, "BYPASS.exe")
	assert.Contains(t, text, locale.Get(locale.PanelLog))
	assert.Contains(t, rows[len(rows)-1], "VOL 30%")
	assert.NotContains(t, text, locale.Get(locale.QuitPrompt))
}

func TestLogShowsTrailingLines(t *testing.T) {
	g := game.New(nil, nil)
	g.StartDirect()
	sess := g.Session()
	for i := 0; i < 20; i++ {
		sess.Log = append(sess.Log, "line-"+string(rune('a'+i)))
	}
	text := screenText(frame(t, g, input.State{}))

	assert.NotContains(t, text, "line-a")
	assert.Contains(t, text, "line-t")
	assert.Contains(t, text, "line-"+string(rune('a'+20-constants.LogVisibleLines)))
}

func TestSelectedRowsUseSelectedStyle(t *testing.T) {
	g := game.New(nil, nil)
	g.StartDirect()

	palette := render.NewPalette(true)
	o := render.NewRenderOrchestrator(nullSurface{w: 100, h: 32}, palette)
	RegisterAll(o)
	w, h := o.Size()
	ctx := render.NewRenderContext(g.Snapshot(), input.State{Command: 1}, render.AudioView{}, palette, w, h)
	o.RenderFrame(ctx)

	row := ctx.Layout.CommandRow(1)
	cell, ok := o.Buffer().Get(row.X+1, row.Y)
	require.True(t, ok)
	assert.Equal(t, palette.Selected, cell.Style)

	other := ctx.Layout.CommandRow(0)
	cell, _ = o.Buffer().Get(other.X+1, other.Y)
	assert.NotEqual(t, palette.Selected, cell.Style)
}

func TestTutorialOverlayFrame(t *testing.T) {
	g := game.New(nil, nil)
	g.StartTutorial()
	text := screenText(frame(t, g, input.State{}))

	assert.Contains(t, text, "STEP 1/8")
	assert.Contains(t, text, locale.Get(locale.HintTutorial))
	assert.Contains(t, text, "[TUTORIAL]")
}

func TestDialogFrame(t *testing.T) {
	g := game.New(nil, nil)
	g.StartDirect()
	text := screenText(frame(t, g, input.State{Dialog: true}))
	assert.Contains(t, text, locale.Get(locale.QuitPrompt))
}

func TestGameOverBanner(t *testing.T) {
	g := game.New(nil, nil)
	g.StartDirect()
	g.Session().Trace = constants.TraceMax - 1
	g.Advance(constants.TickInterval)
	require.True(t, g.Snapshot().Terminal())

	rows := frame(t, g, input.State{})
	text := screenText(rows)
	assert.Contains(t, text, locale.Get(locale.BannerFailure))
	assert.Contains(t, rows[len(rows)-1], locale.Get(locale.HintGameOver))
}

func TestMutedStatus(t *testing.T) {
	g := game.New(nil, nil)
	g.StartDirect()

	palette := render.NewPalette(false)
	o := render.NewRenderOrchestrator(nullSurface{w: 100, h: 32}, palette)
	RegisterAll(o)
	w, h := o.Size()
	o.RenderFrame(render.NewRenderContext(g.Snapshot(), input.State{}, render.AudioView{Available: true}, palette, w, h))

	assert.Contains(t, o.Buffer().Row(h-1), locale.Get(locale.StatusMuted))
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 9)
	assert.Equal(t, []string{"one two", "three", "four"}, lines)
	assert.Nil(t, wrapText("x", 0))
}
