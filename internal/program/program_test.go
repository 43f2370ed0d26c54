package program

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	app := New([]uint16{0x2405, 0x000F})

	assert.NotNil(t, app.Labels)
	assert.Len(t, app.Lines, 0)
	assert.True(t, app.Checksum != 0)
}

func TestChecksumIdentifiesContent(t *testing.T) {
	a := New([]uint16{0x2405, 0x000F})
	b := New([]uint16{0x2405, 0x000F})
	c := New([]uint16{0x2406, 0x000F})

	assert.Equal(t, a.Checksum, b.Checksum)
	assert.True(t, a.Checksum != c.Checksum)
}
