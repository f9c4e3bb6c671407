package navigation

// History is an in-memory Navigator with back/forward traversal.
type History struct {
	entries  []string
	cursor   int
	listener func(path string)
}

// NewHistory starts with path as the single root entry.
func NewHistory(path string) *History {
	return &History{entries: []string{path}}
}

func (h *History) Path() string {
	return h.entries[h.cursor]
}

// Push drops any forward entries and appends path as the new current entry.
func (h *History) Push(path string) {
	h.entries = append(h.entries[:h.cursor+1], path)
	h.cursor = len(h.entries) - 1
}

func (h *History) SetListener(fn func(path string)) {
	h.listener = fn
}

// Back moves to the previous entry, if any, and notifies the listener.
func (h *History) Back() {
	if h.cursor == 0 {
		return
	}
	h.cursor--
	h.notify()
}

// Forward moves to the next entry, if any, and notifies the listener.
func (h *History) Forward() {
	if h.cursor == len(h.entries)-1 {
		return
	}
	h.cursor++
	h.notify()
}

func (h *History) notify() {
	if h.listener != nil {
		h.listener(h.entries[h.cursor])
	}
}
