package fx3u

// Memory is a read-only, bounds checked view of a program's word array.
// The underlying slice is owned by the caller and must not be mutated for
// the lifetime of a decode session. Memory values are safe to share across
// concurrently running decode sessions.
type Memory struct {
	words []uint16
}

// NewMemory creates a memory view over the given program words.
func NewMemory(words []uint16) Memory {
	return Memory{words: words}
}

// Word returns the word at the given offset. Reads past the end of the
// program always fail with ErrEndOfProgram; the stream is not padded to an
// instruction boundary, silent zero fill would corrupt decoding.
func (m Memory) Word(offset int) (uint16, error) {
	if offset < 0 || offset >= len(m.words) {
		return 0, ErrEndOfProgram
	}
	return m.words[offset], nil
}

// Words returns n consecutive words starting at offset.
func (m Memory) Words(offset, n int) ([]uint16, error) {
	if offset < 0 || n < 0 || offset+n > len(m.words) {
		return nil, ErrEndOfProgram
	}
	return m.words[offset : offset+n : offset+n], nil
}

// Len returns the number of program words.
func (m Memory) Len() int {
	return len(m.words)
}
