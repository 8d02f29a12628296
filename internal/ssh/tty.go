// Package ssh adapts SSH sessions to tcell terminals.
package ssh

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// DefaultTerm is used when a client sends no TERM or one outside AllowedTerms.
const DefaultTerm = "xterm-256color"

// AllowedTerms are the terminal types a client may request. TERM picks a
// terminfo entry at screen creation, so arbitrary values are refused.
var AllowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

// SessionTerm returns the client's TERM from env when it is allowed, or
// DefaultTerm.
func SessionTerm(env []string) string {
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "TERM="); ok && AllowedTerms[v] {
			return v
		}
	}
	return DefaultTerm
}

// Session is the part of a gliderlabs session a terminal needs.
type Session interface {
	Read(b []byte) (int, error)
	Write(b []byte) (int, error)
	Close() error
}

// SessionTty implements tcell.Tty over an SSH session. Each client gets its
// own SessionTty and tcell.Screen.
type SessionTty struct {
	session Session
	mu      sync.Mutex
	window  gossh.Window
	winCh   <-chan gossh.Window
	cb      func()
	once    sync.Once
}

// NewSessionTty wraps s. pty holds the initial window size; winCh delivers
// later resizes.
func NewSessionTty(s Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{
		session: s,
		window:  pty.Window,
		winCh:   winCh,
	}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.session.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.session.Write(b) }
func (t *SessionTty) Close() error                { return t.session.Close() }

// Start, Stop and Drain are no-ops: the channel is opened and flushed by the
// SSH server.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the current terminal dimensions.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts the
// goroutine that follows the window-change channel until it closes.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.once.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				notify := t.cb
				t.mu.Unlock()
				if notify != nil {
					notify()
				}
			}
		}()
	})
}
