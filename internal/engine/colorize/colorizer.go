package colorize

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/dshills/glyphedit/internal/engine/document"
	"github.com/dshills/glyphedit/internal/engine/lang"
	"github.com/dshills/glyphedit/internal/logging"
)

// Default tuning values.
const (
	// DefaultBatch is the number of lines re-tokenized per tick.
	DefaultBatch = 10
	// DefaultCommentDelay is the number of ticks a block comment rescan
	// waits after the last edit.
	DefaultCommentDelay = 60
)

const noCheck = -1

// Colorizer assigns token classes to the glyphs of a document. Work is
// queued by Colorize and performed by Tick, one bounded unit per call, so
// the cost per host frame stays flat however large the edit.
//
// Two kinds of work exist. Range work re-tokenizes a dirty interval of lines,
// at most Batch lines per tick. The block comment rescan walks the whole
// document and is debounced: every Colorize call pushes it CommentDelay
// ticks into the future.
type Colorizer struct {
	doc     *document.Document
	matcher *lang.Matcher
	logger  *log.Logger

	batch int
	delay int

	frame    int
	rangeMin int
	rangeMax int
	checkAt  int

	// OnColorized, when set, is called after each unit of work. The argument
	// is true for a block comment rescan and false for range work.
	OnColorized func(multiline bool)
}

// Option configures a Colorizer.
type Option func(*Colorizer)

// WithBatch sets the number of lines tokenized per tick.
func WithBatch(n int) Option {
	return func(c *Colorizer) {
		if n > 0 {
			c.batch = n
		}
	}
}

// WithCommentDelay sets the block comment rescan debounce in ticks.
func WithCommentDelay(ticks int) Option {
	return func(c *Colorizer) {
		if ticks >= 0 {
			c.delay = ticks
		}
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(logger *log.Logger) Option {
	return func(c *Colorizer) {
		c.logger = logger
	}
}

// New creates a colorizer for doc using m. A nil matcher tokenizes nothing.
func New(doc *document.Document, m *lang.Matcher, opts ...Option) *Colorizer {
	c := &Colorizer{
		doc:      doc,
		matcher:  m,
		batch:    DefaultBatch,
		delay:    DefaultCommentDelay,
		rangeMin: math.MaxInt,
		rangeMax: 0,
		checkAt:  noCheck,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.OrDefault(c.logger)
	return c
}

// Matcher returns the active matcher.
func (c *Colorizer) Matcher() *lang.Matcher {
	return c.matcher
}

// SetMatcher switches the language. The caller is expected to queue the
// whole document afterwards. Block comment flags are dropped at once when
// the new language has no block comments, since no rescan will run.
func (c *Colorizer) SetMatcher(m *lang.Matcher) {
	c.matcher = m
	if !c.blockComments() {
		c.clearComments()
	}
}

// Frame returns the number of ticks seen so far.
func (c *Colorizer) Frame() int {
	return c.frame
}

// Colorize queues lines [from, from+lines) for re-tokenizing. A lines value
// of -1 means to the end of the document. The pending interval only ever
// widens until it drains. When the language has block comments the rescan
// is (re)scheduled as well.
func (c *Colorizer) Colorize(from, lines int) {
	n := c.doc.LineCount()
	to := n
	if lines != -1 {
		to = min(n, from+lines)
	}
	c.rangeMin = max(0, min(c.rangeMin, from))
	c.rangeMax = max(c.rangeMin, max(c.rangeMax, to))

	if c.blockComments() {
		c.checkAt = c.frame + c.delay
	}
}

// Pending reports whether any work is queued.
func (c *Colorizer) Pending() bool {
	return c.rangeMin < c.rangeMax || c.checkAt != noCheck
}

// PendingRange returns the queued line interval. It is empty when no range
// work is queued.
func (c *Colorizer) PendingRange() (from, to int) {
	if c.rangeMin >= c.rangeMax {
		return 0, 0
	}
	return c.rangeMin, c.rangeMax
}

// Tick advances one frame and performs at most one unit of work: the block
// comment rescan when it is due, otherwise one batch of range work. It
// reports whether any work was done.
func (c *Colorizer) Tick() bool {
	c.frame++

	if c.checkAt != noCheck && c.frame > c.checkAt {
		c.checkAt = noCheck
		if c.ScanComments() {
			c.notify(true)
		}
		return true
	}

	if c.rangeMin < c.rangeMax {
		to := min(c.rangeMin+c.batch, c.rangeMax)
		c.ColorizeRange(c.rangeMin, to)
		c.logger.Debug("colorized lines", logging.FieldFrom, c.rangeMin, logging.FieldTo, to)
		c.rangeMin = to
		if c.rangeMin == c.rangeMax {
			c.rangeMin, c.rangeMax = math.MaxInt, 0
		}
		c.notify(false)
		return true
	}
	return false
}

// Flush performs all queued work immediately: every pending range and then
// the block comment rescan if one is scheduled.
func (c *Colorizer) Flush() {
	for c.rangeMin < c.rangeMax {
		to := min(c.rangeMin+c.batch, c.rangeMax)
		c.ColorizeRange(c.rangeMin, to)
		c.rangeMin = to
		if c.rangeMin == c.rangeMax {
			c.rangeMin, c.rangeMax = math.MaxInt, 0
		}
		c.notify(false)
	}
	if c.checkAt != noCheck {
		c.checkAt = noCheck
		if c.ScanComments() {
			c.notify(true)
		}
	}
}

// ColorizeRange re-tokenizes lines [from, to) synchronously. Every glyph is
// reset to Default first; a glyph takes the class of the token whose byte
// range contains its first byte.
func (c *Colorizer) ColorizeRange(from, to int) {
	to = max(0, min(c.doc.LineCount(), to))
	for i := max(from, 0); i < to; i++ {
		l := c.doc.Line(i)
		for k := range l.Glyphs {
			l.Glyphs[k].Class = lang.Default
		}
		if c.matcher == nil || len(l.Glyphs) == 0 {
			continue
		}
		tokens := c.matcher.Tokens(l.Text())
		paint(l, tokens)
	}
}

// paint assigns token classes to glyphs by byte offset.
func paint(l *document.Line, tokens []lang.Token) {
	t := 0
	offset := 0
	for k := range l.Glyphs {
		for t < len(tokens) && tokens[t].End <= offset {
			t++
		}
		if t == len(tokens) {
			return
		}
		if offset >= tokens[t].Start {
			l.Glyphs[k].Class = tokens[t].Class
		}
		offset += l.Glyphs[k].Char.Len()
	}
}

func (c *Colorizer) blockComments() bool {
	if c.matcher == nil {
		return false
	}
	def := c.matcher.Definition()
	return def.CommentStart != "" && def.CommentEnd != ""
}

func (c *Colorizer) notify(multiline bool) {
	if c.OnColorized != nil {
		c.OnColorized(multiline)
	}
}
