package engine

// Clipboard is the host's clipboard. The editor only reads and writes text.
type Clipboard interface {
	SetText(text string)
	Text() string
}

// MemoryClipboard is a process-local Clipboard used when the host supplies
// none.
type MemoryClipboard struct {
	text string
}

// SetText stores text.
func (c *MemoryClipboard) SetText(text string) {
	c.text = text
}

// Text returns the stored text.
func (c *MemoryClipboard) Text() string {
	return c.text
}
