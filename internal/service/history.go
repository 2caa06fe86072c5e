package service

import "strings"

// History is an in-memory navigation stack implementing Location.
// Navigate drops any forward entries, like a browser push.
type History struct {
	entries []string
	index   int
}

// NewHistory starts a history at the given query.
func NewHistory(initial string) *History {
	return &History{entries: []string{strings.TrimPrefix(initial, "?")}}
}

func (h *History) Query() string {
	return h.entries[h.index]
}

func (h *History) Navigate(query string) {
	h.entries = append(h.entries[:h.index+1], strings.TrimPrefix(query, "?"))
	h.index++
}

// Back moves one entry back and reports whether it moved.
func (h *History) Back() bool {
	if h.index == 0 {
		return false
	}
	h.index--
	return true
}

func (h *History) Forward() bool {
	if h.index >= len(h.entries)-1 {
		return false
	}
	h.index++
	return true
}

// Len returns the number of entries, including forward ones.
func (h *History) Len() int {
	return len(h.entries)
}
