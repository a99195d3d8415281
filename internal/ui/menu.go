package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// menuBar is the row of document commands above the board.
type menuBar struct {
	newBtn   *widget.Button
	saveBtn  *widget.Button
	clearBtn *widget.Button
	undoBtn  *widget.Button
	redoBtn  *widget.Button
}

func newMenuBar(p *Paint) *menuBar {
	m := &menuBar{
		newBtn:   widget.NewButtonWithIcon("New", theme.FileIcon(), p.NewCanvas),
		saveBtn:  widget.NewButtonWithIcon("Save", theme.DocumentSaveIcon(), p.Save),
		clearBtn: widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), p.Clear),
		undoBtn:  widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), p.Undo),
		redoBtn:  widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), p.Redo),
	}
	m.clearBtn.Importance = widget.DangerImportance
	return m
}

// update enables Undo and Redo only where history allows.
func (m *menuBar) update(canUndo, canRedo bool) {
	setEnabled(m.undoBtn, canUndo)
	setEnabled(m.redoBtn, canRedo)
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}

func (m *menuBar) object() fyne.CanvasObject {
	title := widget.NewLabelWithStyle("LocalPaint", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	return container.NewHBox(
		title,
		layout.NewSpacer(),
		m.newBtn,
		m.saveBtn,
		m.clearBtn,
		widget.NewSeparator(),
		m.undoBtn,
		m.redoBtn,
	)
}
