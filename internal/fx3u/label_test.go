package fx3u

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestPrescan(t *testing.T) {
	mem := NewMemory([]uint16{
		0xB005, // P5
		0x2405, // LD X5, not a label
		0x0028, // MOV
		0x80D2,
		0x0004,
		0x820A,
		0x0000,
		0xB00A, // P10
	})

	labels, err := Prescan(mem)
	assert.NoError(t, err)
	assert.Equal(t, 2, labels.Len())

	offset, ok := labels.Lookup(5)
	assert.True(t, ok)
	assert.Equal(t, 0, offset)

	offset, ok = labels.Lookup(10)
	assert.True(t, ok)
	assert.Equal(t, 7, offset)

	_, ok = labels.Lookup(1)
	assert.False(t, ok)

	assert.Equal(t, []uint8{5, 10}, labels.Pointers())
}

func TestPrescanDuplicate(t *testing.T) {
	mem := NewMemory([]uint16{0xB005, 0x2405, 0xB005})

	labels, err := Prescan(mem)
	var malformed MalformedError
	assert.True(t, errors.As(err, &malformed))
	assert.Equal(t, 2, malformed.Offset)

	// first definition is kept, never overwritten
	offset, ok := labels.Lookup(5)
	assert.True(t, ok)
	assert.Equal(t, 0, offset)

	_, ok = labels.definitionError(2)
	assert.True(t, ok)
	_, ok = labels.definitionError(0)
	assert.False(t, ok)
}

func TestIsLabelWord(t *testing.T) {
	assert.True(t, isLabelWord(0xB000))
	assert.True(t, isLabelWord(0xB07F))
	assert.False(t, isLabelWord(0xB080)) // pointer number out of documented range
	assert.False(t, isLabelWord(0xB100))
	assert.False(t, isLabelWord(0x2405))

	assert.Equal(t, uint16(0xB00A), labelWord(10))
}
