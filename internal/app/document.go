package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iw2rmb/scribe/editor"
	"github.com/iw2rmb/scribe/internal/config"
	"github.com/iw2rmb/scribe/internal/log"
	"github.com/iw2rmb/scribe/scrollbar"
)

const minFontSize = 6

// Document is one tab: an editor surface, its scrollbar, and file state.
type Document struct {
	ed editor.Model
	sb scrollbar.Model

	path     string // empty until saved or opened from disk
	untitled string // display name while path is empty

	// cleanSeq is the buffer edit sequence at the last load/save. The tab
	// is modified whenever the buffer has moved past it.
	cleanSeq uint64

	// fontSize floats with zoom; baseFontSize is the configured
	// starting size that reset returns to.
	fontSize     int
	baseFontSize int
}

func newDocument(cfg *config.Config, theme Theme, untitled string) *Document {
	d := &Document{
		untitled:     untitled,
		fontSize:     cfg.Editor.FontSize,
		baseFontSize: cfg.Editor.FontSize,
	}
	d.ed = editor.New(editor.Config{
		ShowLineNums: cfg.Editor.LineNumbers,
		TabWidth:     cfg.Editor.TabWidth,
		HistoryLimit: cfg.Editor.HistoryLimit,
		Style:        theme.Editor,
		Clipboard:    systemClipboard{},
	})
	d.sb = scrollbar.New(func(f float64) {
		d.ed = d.ed.ScrollToFraction(f)
	})
	d.sb = d.sb.SetStyles(theme.Scrollbar)
	d.cleanSeq = d.ed.Buffer().TextVersion()
	return d
}

// Modified reports whether the buffer text has changed since the last
// load or save. Cursor and selection movement never set it.
func (d *Document) Modified() bool {
	return d.ed.Buffer().TextVersion() != d.cleanSeq
}

func (d *Document) markClean() {
	d.cleanSeq = d.ed.Buffer().TextVersion()
}

// Name is the bare display name: the path basename, or the assigned
// untitled label.
func (d *Document) Name() string {
	if d.path != "" {
		return filepath.Base(d.path)
	}
	return d.untitled
}

// Title is the tab label: the name with a "*" prefix while modified.
func (d *Document) Title() string {
	if d.Modified() {
		return "*" + d.Name()
	}
	return d.Name()
}

func (d *Document) Path() string { return d.path }

// Load replaces the document with the contents of path. The buffer
// history is reset and the tab becomes unmodified.
func (d *Document) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("open %s: %v", path, err)
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	d.ed.Buffer().SetText(text)
	d.path = path
	d.markClean()
	d.refresh()
	log.Info("opened %s", path)
	return nil
}

// reset empties the document in place: text, backing path, and the
// modified flag all clear, but the tab itself survives.
func (d *Document) reset() {
	d.ed.Buffer().SetText("")
	d.path = ""
	d.markClean()
	d.refresh()
}

// refresh pulls buffer changes made outside the editor's own event flow
// into its view.
func (d *Document) refresh() {
	d.ed, _ = d.ed.Update(nil)
	d.syncScrollbar()
}

// Save writes the buffer to the document's path. It returns false with a
// nil error when there is no path yet and the caller must prompt for one.
func (d *Document) Save() (bool, error) {
	if d.path == "" {
		return false, nil
	}
	return true, d.saveTo(d.path)
}

// SaveAs writes the buffer to path and adopts it as the document's path.
func (d *Document) SaveAs(path string) error {
	if err := d.saveTo(path); err != nil {
		return err
	}
	d.path = path
	return nil
}

func (d *Document) saveTo(path string) error {
	if err := os.WriteFile(path, []byte(d.ed.Buffer().Text()), 0o644); err != nil {
		log.Error("save %s: %v", path, err)
		return fmt.Errorf("could not save %s: %w", path, err)
	}
	d.markClean()
	log.Info("saved %s", path)
	return nil
}

// FontSize is surfaced in the status bar; terminal cells cannot scale
// glyphs, but the per-tab value keeps its semantics.
func (d *Document) FontSize() int { return d.fontSize }

func (d *Document) zoomIn() { d.fontSize++ }

func (d *Document) zoomOut() {
	if d.fontSize > minFontSize {
		d.fontSize--
	}
}

func (d *Document) zoomReset() { d.fontSize = d.baseFontSize }

// setArea positions and sizes the editor and its scrollbar: the editor
// fills the region except the rightmost column, which the scrollbar owns.
func (d *Document) setArea(x, y, width, height int) {
	edWidth := width - 1
	if edWidth < 0 {
		edWidth = 0
	}
	d.ed = d.ed.SetSize(edWidth, height)
	d.ed = d.ed.SetPosition(x, y)
	d.sb = d.sb.SetPosition(x+edWidth, y)
	d.sb = d.sb.SetHeight(height)
	d.syncScrollbar()
}

// syncScrollbar pushes the editor's visible fraction pair into the thumb.
func (d *Document) syncScrollbar() {
	d.sb = d.sb.Set(d.ed.ScrollFractions())
}
