package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	TabWidth     int // default: 4
	Style        Style

	// Input options.
	KeyMap    KeyMap
	Clipboard Clipboard
	ReadOnly  bool

	// Forwarded to buffer.Options.
	HistoryLimit int
}
