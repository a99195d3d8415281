package ui

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"LocalPaint/internal/engine"
	"LocalPaint/internal/export"
)

// Save asks for a destination and exports the painting there. The format
// follows the chosen file's extension.
func (p *Paint) Save() {
	def := p.engine.DefaultFormat()
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			p.showError(err)
			return
		}
		if w == nil {
			return
		}
		if err := p.saveTo(w, w.URI().Name()); err != nil {
			p.showError(err)
		}
	}, p.win)
	exts := make([]string, 0, len(export.Formats()))
	for _, f := range export.Formats() {
		exts = append(exts, f.Ext())
	}
	d.SetFilter(storage.NewExtensionFileFilter(exts))
	d.SetFileName(p.engine.DefaultFilename(def))
	d.Show()
}

// saveTo writes the export for name to w and closes w.
func (p *Paint) saveTo(w io.WriteCloser, name string) (err error) {
	defer func() {
		if cerr := w.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", name, cerr)
		}
	}()

	f, ok := export.FromFilename(name, p.engine.DefaultFormat())
	if !ok {
		engine.Logger().Info("[ui] no known extension, using default format", "name", name, "format", f)
	}
	if err := p.engine.Export(w, f); err != nil {
		return err
	}
	p.SetStatus(fmt.Sprintf("Saved %s", name))
	return nil
}
