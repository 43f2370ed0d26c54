package fx3u

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func decodeAll(t *testing.T, words []uint16) []Result {
	t.Helper()

	dec := NewProgramDecoder(NewMemory(words))
	var results []Result
	for result := range dec.All() {
		results = append(results, result)
	}
	return results
}

func TestProgramDecoder(t *testing.T) {
	t.Parallel()

	// LD X0, OUT Y0, MOV K1234 D10, END
	results := decodeAll(t, []uint16{
		0x2400,
		0xC400,
		0x0028, 0x80D2, 0x0004, 0x820A, 0x0000,
		0x000F,
	})

	assert.Len(t, results, 4)
	for _, result := range results {
		assert.NoError(t, result.Err)
	}

	assert.Equal(t, Ld, results[0].Instruction.Mnemonic)
	assert.Equal(t, Out, results[1].Instruction.Mnemonic)
	assert.Equal(t, Mov, results[2].Instruction.Mnemonic)
	assert.Equal(t, 2, results[2].Offset)
	assert.Equal(t, []uint16{0x0028, 0x80D2, 0x0004, 0x820A, 0x0000}, results[2].Words)
	assert.Equal(t, End, results[3].Instruction.Mnemonic)
}

func TestProgramDecoderEndTerminates(t *testing.T) {
	t.Parallel()

	// words after END belong to a different memory region
	results := decodeAll(t, []uint16{0x2400, 0x000F, 0x1234, 0x5678})

	assert.Len(t, results, 2)
	assert.Equal(t, End, results[1].Instruction.Mnemonic)
}

func TestProgramDecoderUnknownOpcode(t *testing.T) {
	t.Parallel()

	// the unknown word at offset 3 is reported in-stream, decoding
	// resynchronizes at the very next word
	results := decodeAll(t, []uint16{0x2400, 0xC400, 0x2401, 0x1234, 0xC401, 0x000F})

	assert.Len(t, results, 6)

	var unknown UnknownOpcodeError
	assert.True(t, errors.As(results[3].Err, &unknown))
	assert.Equal(t, 3, results[3].Offset)
	assert.Equal(t, uint16(0x1234), unknown.Word)

	assert.Equal(t, 4, results[4].Offset)
	assert.Equal(t, Out, results[4].Instruction.Mnemonic)
	assert.NoError(t, results[4].Err)
}

func TestProgramDecoderTruncated(t *testing.T) {
	t.Parallel()

	// the MOV's second envelope runs past the program end, the
	// remaining words are operand fragments and stay attached to the
	// truncated result instead of being decoded as instructions
	results := decodeAll(t, []uint16{0x2400, 0x0028, 0x80D2, 0x0004, 0x820A})

	assert.Len(t, results, 2)
	assert.NoError(t, results[0].Err)

	var truncated TruncatedOperandError
	assert.True(t, errors.As(results[1].Err, &truncated))
	assert.Equal(t, 1, results[1].Offset)
	assert.Equal(t, []uint16{0x0028, 0x80D2, 0x0004, 0x820A}, results[1].Words)
}

func TestProgramDecoderJumpResolution(t *testing.T) {
	t.Parallel()

	// CJ P5 skips over the first OUT into the labeled section
	results := decodeAll(t, []uint16{
		0x2400,
		0x0010, 0x8805, 0x8000, // CJ P5
		0xC400,
		0xB005, // P5
		0xC401,
		0x000F,
	})

	assert.Len(t, results, 6)

	cj := results[1].Instruction
	assert.Equal(t, Cj, cj.Mnemonic)
	assert.Equal(t, []Operand{PointerLabel{Number: 5, Offset: 5, Resolved: true}}, cj.Operands)

	label := results[3].Instruction
	assert.Equal(t, Label, label.Mnemonic)
	assert.Equal(t, 5, label.Offset)
}

func TestProgramDecoderUnresolvedPointer(t *testing.T) {
	t.Parallel()

	results := decodeAll(t, []uint16{0x0010, 0x8863, 0x8000, 0x000F})

	assert.Len(t, results, 2)

	// the CJ is decoded and annotated, the stream continues afterwards
	var unresolved UnresolvedPointerError
	assert.True(t, errors.As(results[0].Err, &unresolved))
	assert.Equal(t, uint8(99), unresolved.Pointer)
	assert.Equal(t, Cj, results[0].Instruction.Mnemonic)

	assert.Equal(t, End, results[1].Instruction.Mnemonic)
}

func TestProgramDecoderDuplicateLabel(t *testing.T) {
	t.Parallel()

	results := decodeAll(t, []uint16{0xB005, 0x2400, 0xB005, 0x000F})

	assert.Len(t, results, 4)
	assert.Equal(t, Label, results[0].Instruction.Mnemonic)
	assert.NoError(t, results[0].Err)

	var malformed MalformedError
	assert.True(t, errors.As(results[2].Err, &malformed))
	assert.Equal(t, 2, malformed.Offset)

	// alignment survives the duplicate
	assert.Equal(t, End, results[3].Instruction.Mnemonic)
}

func TestProgramDecoderWithoutEnd(t *testing.T) {
	t.Parallel()

	results := decodeAll(t, []uint16{0x2400, 0xC400})

	assert.Len(t, results, 2)
	assert.Equal(t, Out, results[1].Instruction.Mnemonic)
}

func TestProgramDecoderAt(t *testing.T) {
	t.Parallel()

	mem := NewMemory([]uint16{0xB005, 0x2400, 0xC400, 0x000F})
	labels, err := Prescan(mem)
	assert.NoError(t, err)

	dec := NewProgramDecoderAt(mem, labels, 1)

	result, ok := dec.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, result.Offset)
	assert.Equal(t, Ld, result.Instruction.Mnemonic)

	assert.Equal(t, labels, dec.LabelTable())
}

func TestProgramDecoderEarlyStop(t *testing.T) {
	t.Parallel()

	dec := NewProgramDecoder(NewMemory([]uint16{0x2400, 0xC400, 0x000F}))

	count := 0
	for range dec.All() {
		count++
		break
	}
	assert.Equal(t, 1, count)

	// the iterator picks up where the loop stopped
	result, ok := dec.Next()
	assert.True(t, ok)
	assert.Equal(t, Out, result.Instruction.Mnemonic)
}
