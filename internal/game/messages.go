package game

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// MaxMessages is the number of lines kept in the message log.
const MaxMessages = 50

// Message is one line of player-facing text.
type Message struct {
	Text  string      `json:"text"`
	Color tcell.Color `json:"color"`
}

// Messages is a bounded log of player-facing text, oldest first.
type Messages struct {
	lines []Message
	limit int
}

// NewMessages returns an empty log that keeps at most limit lines.
func NewMessages(limit int) *Messages {
	if limit <= 0 {
		limit = MaxMessages
	}
	return &Messages{limit: limit}
}

// Add appends a line, dropping the oldest once the log is full.
func (m *Messages) Add(text string, color tcell.Color) {
	m.lines = append(m.lines, Message{Text: text, Color: color})
	if len(m.lines) > m.limit {
		m.lines = m.lines[len(m.lines)-m.limit:]
	}
}

// All returns every kept line.
func (m *Messages) All() []Message { return m.lines }

func (m *Messages) Len() int { return len(m.lines) }

// Last returns up to n of the newest lines.
func (m *Messages) Last(n int) []Message {
	if n >= len(m.lines) {
		return m.lines
	}
	return m.lines[len(m.lines)-n:]
}

// Restore replaces the log contents.
func (m *Messages) Restore(lines []Message) {
	m.lines = append(m.lines[:0], lines...)
	if len(m.lines) > m.limit {
		m.lines = m.lines[len(m.lines)-m.limit:]
	}
}

// Wrapped returns the newest rows of the log word-wrapped to width display
// columns, keeping at most height rows.
func (m *Messages) Wrapped(width, height int) []Message {
	var rows []Message
	for i := len(m.lines) - 1; i >= 0 && len(rows) < height; i-- {
		parts := wrap(m.lines[i].Text, width)
		for j := len(parts) - 1; j >= 0 && len(rows) < height; j-- {
			rows = append(rows, Message{Text: parts[j], Color: m.lines[i].Color})
		}
	}
	for l, r := 0, len(rows)-1; l < r; l, r = l+1, r-1 {
		rows[l], rows[r] = rows[r], rows[l]
	}
	return rows
}

// wrap splits text into lines no wider than width columns. Words wider than
// width are split mid-word.
func wrap(text string, width int) []string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return []string{text}
	}
	var (
		lines     []string
		line      strings.Builder
		lineWidth int
	)
	flush := func() {
		if lineWidth > 0 {
			lines = append(lines, line.String())
		}
		line.Reset()
		lineWidth = 0
	}
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if lineWidth > 0 && lineWidth+1+ww > width {
			flush()
		}
		for ww > width {
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				break
			}
			lines = append(lines, head)
			word = word[len(head):]
			ww = runewidth.StringWidth(word)
		}
		if word == "" {
			continue
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += ww
	}
	flush()
	return lines
}
