package command

// History remembers the most recently executed command. It holds a single
// slot: recording a command makes the previous one unreachable.
type History struct {
	previous Command
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Record stores c as the previous command.
func (h *History) Record(c Command) {
	h.previous = c
}

// Previous returns the stored command without clearing it.
func (h *History) Previous() (Command, bool) {
	return h.previous, h.previous != nil
}

// Take returns the stored command and empties the slot.
func (h *History) Take() (Command, bool) {
	c := h.previous
	h.previous = nil
	return c, c != nil
}

// Empty reports whether there is nothing to undo.
func (h *History) Empty() bool {
	return h.previous == nil
}
