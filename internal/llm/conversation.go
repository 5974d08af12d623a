package llm

import "sync"

// Conversation is the opaque, provider-owned handle to one stateful chat.
// The session owns exactly one; it is recreated, never mutated, when the
// session's language changes before the user has engaged.
type Conversation struct {
	mu                sync.Mutex
	systemInstruction string
	history           []geminiContent
}

// snapshot returns a copy of the committed history.
func (c *Conversation) snapshot() []geminiContent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]geminiContent, len(c.history))
	copy(out, c.history)
	return out
}

// commit appends a completed user/model exchange. Failed turns never commit,
// so an abandoned turn leaves the conversation exactly as it was.
func (c *Conversation) commit(turns ...geminiContent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, turns...)
}

// Len reports the number of committed history entries.
func (c *Conversation) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.history)
}
