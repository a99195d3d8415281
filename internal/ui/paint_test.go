package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalPaint/internal/config"
	"LocalPaint/internal/state"
)

func newTestPaint(t *testing.T) *Paint {
	t.Helper()
	test.NewTempApp(t)
	cfg := config.Default()
	cfg.Canvas.Width, cfg.Canvas.Height = 40, 40

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	p, err := NewPaint(cfg, w)
	require.NoError(t, err)
	t.Cleanup(p.Close)
	w.SetContent(p.Content())
	p.board.Resize(fyne.NewSize(40, 40))
	return p
}

func press(pos fyne.Position) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: pos},
		Button:     desktop.MouseButtonPrimary,
	}
}

func drag(pos fyne.Position) *fyne.DragEvent {
	return &fyne.DragEvent{PointEvent: fyne.PointEvent{Position: pos}}
}

func drawLine(b *BoardWidget, from, to fyne.Position) {
	b.MouseDown(press(from))
	b.Dragged(drag(to))
	b.DragEnd()
	b.MouseUp(press(to))
}

func TestBoardStrokeEnablesUndo(t *testing.T) {
	p := newTestPaint(t)
	assert.True(t, p.menu.undoBtn.Disabled())
	assert.True(t, p.menu.redoBtn.Disabled())

	drawLine(p.board, fyne.NewPos(5, 5), fyne.NewPos(30, 5))
	assert.Equal(t, 2, p.engine.HistoryLen(), "DragEnd and MouseUp commit one stroke")
	p.refresh()
	assert.False(t, p.menu.undoBtn.Disabled())

	test.Tap(p.menu.undoBtn)
	p.engine.Wait()
	assert.Equal(t, 0, p.engine.Cursor())
	assert.True(t, p.menu.undoBtn.Disabled())
	assert.False(t, p.menu.redoBtn.Disabled())

	test.Tap(p.menu.redoBtn)
	p.engine.Wait()
	assert.Equal(t, 1, p.engine.Cursor())
}

func TestBoardScalesPositions(t *testing.T) {
	p := newTestPaint(t)
	p.board.Resize(fyne.NewSize(80, 20))
	assert.Equal(t, state.Pt(20, 20), p.board.toSurface(fyne.NewPos(40, 10)))
}

func TestBoardIgnoresSecondaryButton(t *testing.T) {
	p := newTestPaint(t)
	p.board.MouseDown(&desktop.MouseEvent{Button: desktop.MouseButtonSecondary})
	assert.False(t, p.engine.Drawing())
}

func TestBoardMouseOutEndsStroke(t *testing.T) {
	p := newTestPaint(t)
	p.board.MouseDown(press(fyne.NewPos(5, 5)))
	p.board.Dragged(drag(fyne.NewPos(20, 20)))
	require.True(t, p.engine.Drawing())

	p.board.MouseOut()
	assert.False(t, p.engine.Drawing())
	assert.Equal(t, 2, p.engine.HistoryLen())
}

func TestBoardShowsBackgroundWhereErased(t *testing.T) {
	p := newTestPaint(t)
	drawLine(p.board, fyne.NewPos(5, 20), fyne.NewPos(35, 20))
	test.Tap(p.tools.buttons[state.ToolEraser])
	drawLine(p.board, fyne.NewPos(5, 20), fyne.NewPos(35, 20))
	p.board.Refresh()

	r := test.WidgetRenderer(p.board).(*boardWidgetRenderer)
	shown, ok := r.image.Image.(*image.NRGBA)
	require.True(t, ok)
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, shown.NRGBAAt(20, 20))
}

func TestToolButtons(t *testing.T) {
	p := newTestPaint(t)
	assert.Equal(t, widget.HighImportance, p.tools.buttons[state.ToolBrush].Importance)

	test.Tap(p.tools.buttons[state.ToolEraser])
	s := p.engine.Settings()
	assert.Equal(t, state.ToolEraser, s.Tool())
	assert.Equal(t, widget.HighImportance, p.tools.buttons[state.ToolEraser].Importance)
	assert.Equal(t, widget.MediumImportance, p.tools.buttons[state.ToolBrush].Importance)
	assert.Len(t, p.tools.buttons, 3)
}

func TestSliders(t *testing.T) {
	p := newTestPaint(t)
	assert.Equal(t, "Size: 10px", p.tools.sizeLabel.Text)
	assert.Equal(t, "Opacity: 100%", p.tools.opacityLabel.Text)
	assert.Equal(t, 1.0, p.tools.size.Step)
	assert.Equal(t, 5.0, p.tools.opacity.Step)

	p.tools.size.OnChanged(25)
	p.tools.opacity.OnChanged(52)
	s := p.engine.Settings()
	assert.Equal(t, 25, s.Width())
	assert.Equal(t, 0.5, s.Opacity())
	assert.Equal(t, "Size: 25px", p.tools.sizeLabel.Text)
	assert.Equal(t, "Opacity: 50%", p.tools.opacityLabel.Text)
}

func TestHexEntry(t *testing.T) {
	p := newTestPaint(t)

	p.colors.entry.SetText("#abc")
	assert.NoError(t, p.colors.entry.Validate())
	test.Tap(p.colors.apply)
	assert.True(t, p.engine.IsActiveColor("#AABBCC"))
	assert.Equal(t, "#AABBCC", p.colors.hexLabel.Text)
	require.NotEmpty(t, p.colors.recent.Objects)
	assert.Equal(t, state.Color("#AABBCC"), p.colors.recent.Objects[0].(*colorSwatch).Color)

	p.colors.entry.SetText("#ZZZZZZ")
	assert.Error(t, p.colors.entry.Validate())
	test.Tap(p.colors.apply)
	assert.True(t, p.engine.IsActiveColor("#aabbcc"), "previous color kept")
	assert.Equal(t, "Invalid color #ZZZZZZ", p.status.Text)
}

func TestPaletteSwatch(t *testing.T) {
	p := newTestPaint(t)
	require.Len(t, p.colors.swatches, 35)

	red := p.colors.swatches[0]
	test.Tap(red)
	assert.True(t, p.engine.IsActiveColor("#FF0000"))
	assert.True(t, red.selected)
	assert.False(t, p.colors.swatches[1].selected)
}

func TestClearAndNewButtons(t *testing.T) {
	p := newTestPaint(t)
	drawLine(p.board, fyne.NewPos(5, 5), fyne.NewPos(30, 30))

	test.Tap(p.menu.clearBtn)
	assert.Equal(t, 3, p.engine.HistoryLen())

	test.Tap(p.menu.newBtn)
	assert.Equal(t, 1, p.engine.HistoryLen())
	assert.Equal(t, 0, p.engine.Cursor())
}

type bufferCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

func TestSaveToUsesExtension(t *testing.T) {
	p := newTestPaint(t)
	drawLine(p.board, fyne.NewPos(5, 5), fyne.NewPos(30, 30))

	var out bufferCloser
	require.NoError(t, p.saveTo(&out, "sketch.jpg"))
	assert.True(t, out.closed)
	img, err := jpeg.Decode(&out.Buffer)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, "Saved sketch.jpg", p.status.Text)
}

func TestSaveToDefaultsToPNG(t *testing.T) {
	p := newTestPaint(t)
	var out bufferCloser
	require.NoError(t, p.saveTo(&out, "sketch"))
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("\x89PNG")))
}
