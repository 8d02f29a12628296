package game

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestMessagesBounded(t *testing.T) {
	m := NewMessages(3)
	for i := range 5 {
		m.Add(fmt.Sprintf("line %d", i), tcell.ColorWhite)
	}
	if m.Len() != 3 {
		t.Fatalf("Len() = %d; want 3", m.Len())
	}
	if got := m.All()[0].Text; got != "line 2" {
		t.Errorf("oldest kept line = %q; want %q", got, "line 2")
	}
	if got := m.Last(1)[0].Text; got != "line 4" {
		t.Errorf("newest line = %q; want %q", got, "line 4")
	}
}

func TestWrap(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"word boundary", "aaa bbb ccc", 7, []string{"aaa bbb", "ccc"}},
		{"long word split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"wide runes", "日本語", 4, []string{"日本", "語"}},
		{"no width", "anything goes", 0, []string{"anything goes"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := wrap(tc.text, tc.width); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("wrap(%q, %d) = %q; want %q", tc.text, tc.width, got, tc.want)
			}
		})
	}
}

func TestWrappedKeepsNewestRows(t *testing.T) {
	m := NewMessages(10)
	m.Add("old", tcell.ColorWhite)
	m.Add("aaa bbb ccc", tcell.ColorRed)
	rows := m.Wrapped(7, 2)
	if len(rows) != 2 || rows[0].Text != "aaa bbb" || rows[1].Text != "ccc" {
		t.Fatalf("Wrapped = %+v", rows)
	}
	if rows[0].Color != tcell.ColorRed {
		t.Error("wrapped rows keep their message color")
	}
}
