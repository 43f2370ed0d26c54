package verification

import (
	"testing"

	"github.com/retroenv/fxgodisasm/internal/fx3u"
	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func decodeResults(words []uint16) []fx3u.Result {
	dec := fx3u.NewProgramDecoder(fx3u.NewMemory(words))
	var results []fx3u.Result
	for result := range dec.All() {
		results = append(results, result)
	}
	return results
}

func TestVerify(t *testing.T) {
	logger := log.NewTestLogger(t)

	words := []uint16{
		0xB005,
		0x2400,
		0x0028, 0x80D2, 0x0004, 0x820A, 0x0000,
		0x0010, 0x8805, 0x8000,
		0x000F,
	}

	assert.NoError(t, Verify(logger, decodeResults(words)))
}

func TestVerifySkipsErrorResults(t *testing.T) {
	logger := log.NewTestLogger(t)

	// the unknown word cannot round-trip and is not part of verification
	words := []uint16{0x2400, 0x1234, 0x000F}

	assert.NoError(t, Verify(logger, decodeResults(words)))
}

func TestVerifyUnresolvedPointer(t *testing.T) {
	logger := log.NewTestLogger(t)

	// an unresolved CJ still re-encodes from its pointer number
	words := []uint16{0x0010, 0x8863, 0x8000, 0x000F}

	assert.NoError(t, Verify(logger, decodeResults(words)))
}

func TestVerifyMismatch(t *testing.T) {
	// NewTestLogger aborts the test on ERROR records; this test expects one.
	logger := log.NewNop()

	results := []fx3u.Result{{
		Offset: 0,
		Words:  []uint16{0x2405},
		Instruction: fx3u.Instruction{
			Length:   1,
			Mnemonic: fx3u.Ld,
			Operands: []fx3u.Operand{fx3u.BitDevice{Device: fx3u.DeviceX, Address: 5}},
			RawWords: []uint16{0x2406}, // does not match the canonical encoding
		},
	}}

	assert.Error(t, Verify(logger, results))
}

func TestVerifyUnencodable(t *testing.T) {
	// NewTestLogger aborts the test on ERROR records; this test expects one.
	logger := log.NewNop()

	results := []fx3u.Result{{
		Instruction: fx3u.Instruction{
			Length:   1,
			Mnemonic: fx3u.Set,
			Operands: []fx3u.Operand{fx3u.BitDevice{Device: fx3u.DeviceX, Address: 5}},
			RawWords: []uint16{0x0000},
		},
	}}

	assert.Error(t, Verify(logger, results))
}
