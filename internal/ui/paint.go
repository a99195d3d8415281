package ui

import (
	"errors"
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"LocalPaint/internal/config"
	"LocalPaint/internal/engine"
	"LocalPaint/internal/raster"
)

// Paint is the window content: board, toolbox, color panel, menu bar and
// status line around one engine.
type Paint struct {
	win     fyne.Window
	surface *raster.Canvas
	engine  *engine.Engine

	board   *BoardWidget
	tools   *toolbox
	colors  *colorPanel
	menu    *menuBar
	status  *widget.Label
	content fyne.CanvasObject
}

// NewPaint creates the surface and engine described by cfg and builds the
// widgets for win.
func NewPaint(cfg config.Config, win fyne.Window) (*Paint, error) {
	p := &Paint{
		win:     win,
		surface: raster.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height, cfg.BackgroundColor().NRGBA()),
		status:  widget.NewLabel("Ready"),
	}
	e, err := engine.New(cfg, p.surface,
		engine.WithOnChange(p.onChange),
		engine.WithOnError(p.onError),
	)
	if err != nil {
		return nil, fmt.Errorf("start engine: %w", err)
	}
	p.engine = e

	p.board = NewBoardWidget(e, image.Rect(0, 0, cfg.Canvas.Width, cfg.Canvas.Height))
	p.tools = newToolbox(e)
	p.colors = newColorPanel(e, win, cfg.Colors.Palette, p.SetStatus)
	p.menu = newMenuBar(p)
	p.refresh()

	side := container.NewVScroll(container.NewVBox(p.tools.object(), widget.NewSeparator(), p.colors.object()))
	side.SetMinSize(fyne.NewSize(220, 0))
	board := container.NewScroll(container.NewCenter(p.board))
	p.content = container.NewBorder(p.menu.object(), p.status, side, nil, board)
	return p, nil
}

func (p *Paint) Content() fyne.CanvasObject { return p.content }

func (p *Paint) Engine() *engine.Engine { return p.engine }

// onChange may run on the restore goroutine, so widget work is handed to
// the main goroutine.
func (p *Paint) onChange(ev engine.Event) {
	fyne.Do(func() {
		p.refresh()
		switch ev {
		case engine.EventCleared:
			p.SetStatus("Canvas cleared")
		case engine.EventReset:
			p.SetStatus("New canvas")
		}
	})
}

func (p *Paint) onError(err error) {
	engine.Logger().Warn("[ui] engine error", "err", err)
	fyne.Do(func() {
		p.refresh()
		p.SetStatus("Error: " + err.Error())
	})
}

// refresh repaints the board and syncs Undo/Redo with history.
func (p *Paint) refresh() {
	p.board.Refresh()
	p.menu.update(p.engine.CanUndo(), p.engine.CanRedo())
}

func (p *Paint) SetStatus(text string) {
	p.status.SetText(text)
}

func (p *Paint) showError(err error) {
	engine.Logger().Warn("[ui] command failed", "err", err)
	p.SetStatus("Error: " + err.Error())
	if errors.Is(err, engine.ErrStrokeActive) {
		return
	}
	dialog.ShowError(err, p.win)
}

func (p *Paint) NewCanvas() {
	if err := p.engine.NewCanvas(); err != nil {
		p.showError(err)
	}
}

func (p *Paint) Clear() {
	if err := p.engine.Clear(); err != nil {
		p.showError(err)
	}
}

func (p *Paint) Undo() {
	ok, err := p.engine.Undo()
	if err != nil {
		p.showError(err)
		return
	}
	if !ok {
		p.SetStatus("Nothing to undo")
	}
	p.refresh()
}

func (p *Paint) Redo() {
	ok, err := p.engine.Redo()
	if err != nil {
		p.showError(err)
		return
	}
	if !ok {
		p.SetStatus("Nothing to redo")
	}
	p.refresh()
}

// MainMenu mirrors the menu bar for the window's native menu.
func (p *Paint) MainMenu() *fyne.MainMenu {
	return fyne.NewMainMenu(
		fyne.NewMenu("File",
			fyne.NewMenuItem("New", p.NewCanvas),
			fyne.NewMenuItem("Save…", p.Save),
		),
		fyne.NewMenu("Edit",
			fyne.NewMenuItem("Undo", p.Undo),
			fyne.NewMenuItem("Redo", p.Redo),
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Clear", p.Clear),
		),
	)
}

// AddShortcuts binds the usual undo, redo and save keys on c.
func (p *Paint) AddShortcuts(c fyne.Canvas) {
	mod := fyne.KeyModifierShortcutDefault
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: mod}, func(fyne.Shortcut) { p.Undo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: mod}, func(fyne.Shortcut) { p.Redo() })
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: mod}, func(fyne.Shortcut) { p.Save() })
}

// Close releases the engine and the surface.
func (p *Paint) Close() {
	p.engine.Close()
	p.surface.Close()
}
