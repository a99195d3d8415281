package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"LocalPaint/internal/config"
)

func RunApp(cfg config.Config) error {
	myApp := app.New()
	myWindow := myApp.NewWindow("LocalPaint")
	myWindow.Resize(fyne.NewSize(1200, 800))

	paint, err := NewPaint(cfg, myWindow)
	if err != nil {
		return err
	}
	defer paint.Close()

	myWindow.SetContent(paint.Content())
	myWindow.SetMainMenu(paint.MainMenu())
	paint.AddShortcuts(myWindow.Canvas())
	myWindow.ShowAndRun()
	return nil
}
