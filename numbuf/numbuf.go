// Package numbuf implements the side-channel store for numeric literals
// parsed by the lexer. Number tokens do not carry their parsed value
// directly; instead the value is appended to a Buffer, and the most
// recently appended entry holds the value of the latest Number token.
package numbuf

// Buffer is an ordered, append-only sequence of parsed numeric literals.
// Indices are never reused. Reading past the end never fails — it
// yields 0.0, matching the lexer's "never fail the pipeline" policy.
type Buffer struct {
	entries []float64
}

// New returns an empty Buffer. The zero value is also ready to use.
func New() *Buffer {
	return &Buffer{entries: make([]float64, 0, 64)}
}

// Add appends a parsed value and returns its index.
func (b *Buffer) Add(value float64) uint32 {
	b.entries = append(b.entries, value)
	return uint32(len(b.entries) - 1)
}

// Get returns the value at index. Out-of-range reads return 0.0.
func (b *Buffer) Get(index uint32) float64 {
	if int(index) >= len(b.entries) {
		return 0.0
	}
	return b.entries[index]
}

// Len returns the number of entries currently stored.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// Reset clears all entries without releasing the backing array.
func (b *Buffer) Reset() {
	b.entries = b.entries[:0]
}
