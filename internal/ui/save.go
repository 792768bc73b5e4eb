package ui

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"DrawPad/internal/export"
	"DrawPad/internal/paint"
	"DrawPad/internal/state"
)

// Saver writes the drawing out on request. Failures are reported to the
// user and never touch the buffer.
type Saver struct {
	window   fyne.Window
	buf      *paint.Buffer
	session  *state.Session
	title    string
	filename string
}

func NewSaver(window fyne.Window, buf *paint.Buffer, session *state.Session, title, filename string) *Saver {
	return &Saver{window: window, buf: buf, session: session, title: title, filename: filename}
}

// ShowSave asks for a destination and writes the drawing there as PNG.
func (s *Saver) ShowSave() {
	s.show(s.filename, ".png", s.WritePNG)
}

// ShowExport asks for a destination and writes the drawing there as PDF.
func (s *Saver) ShowExport() {
	s.show(pdfName(s.filename), ".pdf", s.WritePDF)
}

func (s *Saver) show(name, ext string, write func(fyne.URIWriteCloser) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("[SAVE] Dialog error: %v", err)
			dialog.ShowError(err, s.window)
			return
		}
		if writer == nil {
			return
		}
		if err := write(writer); err != nil {
			log.Printf("[SAVE] %v", err)
			dialog.ShowError(err, s.window)
		}
	}, s.window)
	d.SetFileName(name)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

// WritePNG encodes the buffer into writer and closes it.
func (s *Saver) WritePNG(writer fyne.URIWriteCloser) error {
	return writeAndClose(writer, func(w io.Writer) error {
		return s.buf.WritePNG(w)
	})
}

// WritePDF exports a snapshot of the buffer into writer and closes it.
func (s *Saver) WritePDF(writer fyne.URIWriteCloser) error {
	meta := export.Meta{Title: s.title, Creator: "DrawPad"}
	if s.session != nil {
		meta.Session = s.session.ID
	}
	return writeAndClose(writer, func(w io.Writer) error {
		return export.PDF(w, s.buf.Clone(), meta)
	})
}

func writeAndClose(writer fyne.URIWriteCloser, write func(io.Writer) error) error {
	uri := writer.URI()
	log.Printf("[SAVE] Saving under %s", uri)
	if err := write(writer); err != nil {
		writer.Close()
		return fmt.Errorf("could not save drawing to %s: %w", uri.Name(), err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("could not save drawing to %s: %w", uri.Name(), err)
	}
	log.Printf("[SAVE] Saved %s", uri.Name())
	return nil
}

// pdfName swaps the extension of the suggested PNG name.
func pdfName(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".pdf"
}
