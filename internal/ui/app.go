package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"DrawPad/internal/config"
	"DrawPad/internal/paint"
	"DrawPad/internal/state"
)

const AppID = "io.github.drawpad"

// NewBoard builds the canvas buffer, compositor and widget described by cfg.
func NewBoard(cfg config.Config) (*BoardWidget, error) {
	bg, ink, cursor := cfg.Colors()
	buf, err := paint.NewBuffer(cfg.Width, cfg.Height, bg)
	if err != nil {
		return nil, fmt.Errorf("create canvas: %w", err)
	}
	pointer := state.NewPointer(state.Point{X: cfg.StartX, Y: cfg.StartY}, cfg.BrushRadius)
	return NewBoardWidget(paint.NewCompositor(buf, ink), pointer, BoardOptions{
		Cursor:           cursor,
		ScrollMultiplier: cfg.ScrollMultiplier,
		ScrollStep:       cfg.ScrollStep,
	}), nil
}

// RunApp opens the drawing window and blocks until it is closed.
func RunApp(cfg config.Config, session *state.Session) error {
	board, err := NewBoard(cfg)
	if err != nil {
		return err
	}

	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(cfg.Title)
	myWindow.SetPadded(false)
	myWindow.SetContent(board)
	myWindow.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	myWindow.SetFixedSize(true)

	saver := NewSaver(myWindow, board.Buffer(), session, cfg.Title, cfg.DefaultFilename)
	installTools(myWindow.Canvas(), newTools(saver))

	log.Printf("[APP] Session %s: %dx%d canvas, brush %.1f", session.Short(), cfg.Width, cfg.Height, cfg.BrushRadius)
	myWindow.ShowAndRun()
	return nil
}
