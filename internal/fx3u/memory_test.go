package fx3u

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryWord(t *testing.T) {
	mem := NewMemory([]uint16{0x2405, 0x000F})

	w, err := mem.Word(0)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x2405), w)

	w, err = mem.Word(1)
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x000F), w)

	_, err = mem.Word(2)
	assert.True(t, errors.Is(err, ErrEndOfProgram))

	_, err = mem.Word(-1)
	assert.True(t, errors.Is(err, ErrEndOfProgram))
}

func TestMemoryWords(t *testing.T) {
	mem := NewMemory([]uint16{1, 2, 3, 4})

	words, err := mem.Words(1, 2)
	assert.NoError(t, err)
	assert.Equal(t, []uint16{2, 3}, words)

	words, err = mem.Words(4, 0)
	assert.NoError(t, err)
	assert.Len(t, words, 0)

	_, err = mem.Words(3, 2)
	assert.True(t, errors.Is(err, ErrEndOfProgram))
}

func TestMemoryLen(t *testing.T) {
	assert.Equal(t, 0, NewMemory(nil).Len())
	assert.Equal(t, 3, NewMemory(make([]uint16, 3)).Len())
}
