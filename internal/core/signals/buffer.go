// Package signals collects recent activity snippets (commands, file paths,
// chat lines) in a bounded, insertion-ordered buffer.
package signals

const (
	// MaxSignalLen is the number of characters kept from each signal.
	MaxSignalLen = 200
	// DefaultCapacity is the number of signals retained when no capacity is configured.
	DefaultCapacity = 25
)

// Buffer is a fixed-capacity ring of signals. When full, adding a signal
// evicts the oldest one. Buffer is not safe for concurrent use.
type Buffer struct {
	items []string
	start int // index of the oldest signal
	size  int
}

// NewBuffer returns an empty buffer. A capacity below 1 is clamped to 1.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{items: make([]string, clampCapacity(capacity))}
}

// Add truncates s to MaxSignalLen characters and appends it.
func (b *Buffer) Add(s string) {
	s = Truncate(s)

	if b.size < len(b.items) {
		b.items[(b.start+b.size)%len(b.items)] = s
		b.size++
		return
	}

	b.items[b.start] = s
	b.start = (b.start + 1) % len(b.items)
}

// Items returns the buffered signals, oldest first.
func (b *Buffer) Items() []string {
	out := make([]string, b.size)
	for i := range out {
		out[i] = b.items[(b.start+i)%len(b.items)]
	}
	return out
}

// Len returns the number of buffered signals.
func (b *Buffer) Len() int { return b.size }

// AddSignal is the slice form of Buffer.Add for callers that own a plain
// slice. It appends the truncated signal and drops the oldest entries until
// at most capacity remain, reusing buf's backing array.
func AddSignal(buf []string, s string, capacity int) []string {
	capacity = clampCapacity(capacity)

	buf = append(buf, Truncate(s))
	if excess := len(buf) - capacity; excess > 0 {
		n := copy(buf, buf[excess:])
		clear(buf[n:])
		buf = buf[:n]
	}
	return buf
}

// Truncate returns the first MaxSignalLen characters of s.
func Truncate(s string) string {
	if len(s) <= MaxSignalLen {
		return s
	}

	n := 0
	for i := range s {
		if n == MaxSignalLen {
			return s[:i]
		}
		n++
	}
	return s
}

func clampCapacity(capacity int) int {
	if capacity < 1 {
		return 1
	}
	return capacity
}
