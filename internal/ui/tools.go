package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// tool is a keyboard action on the window.
type tool struct {
	name     string
	shortcut *desktop.CustomShortcut
	run      func()
}

func newTools(saver *Saver) []tool {
	return []tool{
		{
			name:     "save",
			shortcut: &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl},
			run:      saver.ShowSave,
		},
		{
			name:     "export",
			shortcut: &desktop.CustomShortcut{KeyName: fyne.KeyE, Modifier: fyne.KeyModifierControl},
			run:      saver.ShowExport,
		},
	}
}

// installTools binds every tool's chord on c.
func installTools(c fyne.Canvas, tools []tool) {
	for _, t := range tools {
		c.AddShortcut(t.shortcut, func(fyne.Shortcut) {
			log.Printf("[TOOLS] %s (%s)", t.name, t.shortcut.ShortcutName())
			t.run()
		})
	}
}
