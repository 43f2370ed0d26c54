package fx3u

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Decoder classifies and decodes single instructions. It keeps no state
// between calls beyond read-only views of the program memory and label
// table; every DecodeAt call is a pure classification step.
type Decoder struct {
	mem    Memory
	labels *LabelTable
}

// NewDecoder creates an instruction decoder. A nil label table leaves all
// pointer operands unresolved.
func NewDecoder(mem Memory, labels *LabelTable) *Decoder {
	return &Decoder{mem: mem, labels: labels}
}

// DecodeAt decodes the instruction at the given word offset and returns it
// together with the offset of the following instruction.
//
// Classification walks the prioritized opcode table: exact fixed value
// matches and the documented multi word base opcodes are tested before the
// basic bit high byte decomposition, which acts as a catch-all for its
// opcode bytes. A word matching no documented pattern returns
// UnknownOpcodeError with the next offset one word further, the
// recommended resynchronization for captures containing undocumented
// opcodes. Malformed operand contents inside a classified instruction keep
// the instruction's declared length so stream alignment survives. An
// UnresolvedPointerError is returned together with the decoded
// instruction.
func (d *Decoder) DecodeAt(offset int) (Instruction, int, error) {
	w1, err := d.mem.Word(offset)
	if err != nil {
		return Instruction{}, offset, err
	}

	for _, c := range classifiers {
		if w1&c.mask != c.value {
			continue
		}

		ins, err := c.decode(d, offset, w1)
		if err == nil {
			return ins, offset + ins.Length, nil
		}

		var unresolved UnresolvedPointerError
		if errors.As(err, &unresolved) {
			return ins, offset + c.length, err
		}
		var truncated TruncatedOperandError
		if errors.As(err, &truncated) {
			return Instruction{}, d.mem.Len(), err
		}
		// malformed contents: skip the declared length to stay aligned
		next := min(offset+c.length, d.mem.Len())
		return Instruction{}, next, err
	}

	return Instruction{}, offset + 1, UnknownOpcodeError{Offset: offset, Word: w1}
}

type decodeFunc func(d *Decoder, offset int, w1 uint16) (Instruction, error)

// classifier matches the first instruction word against a masked pattern.
// length is the instruction length in words declared by the pattern, used
// for resynchronization when the instruction contents are malformed.
type classifier struct {
	mask   uint16
	value  uint16
	length int
	decode decodeFunc
}

// classifiers is the prioritized opcode classification table, evaluated in
// order. The overlapping opcode ranges make the order load-bearing, see
// DecodeAt.
var classifiers = buildClassifiers()

func buildClassifiers() []classifier {
	var list []classifier

	exact := func(w uint16, length int, decode decodeFunc) {
		list = append(list, classifier{mask: 0xFFFF, value: w, length: length, decode: decode})
	}

	for w, mnemonic := range sortedKeys(controlOpcodes) {
		exact(w, 1, decodeZeroOperand(mnemonic))
	}
	for w, mnemonic := range sortedKeys(extendedBitOpcodes) {
		exact(w, 2, decodeBankedBitInstruction(mnemonic))
	}
	for w, mnemonic := range sortedKeys(pulsedBitOpcodes) {
		exact(w, 2, decodeBankedBitInstruction(mnemonic))
	}
	for w, op := range sortedKeys(compareOpcodes) {
		exact(w, 1+2*op.operands, decodeEnvelopeInstruction(op))
	}
	for w, op := range sortedKeys(applicationOpcodes) {
		exact(w, 1+2*op.operands, decodeEnvelopeInstruction(op))
	}
	for w, mnemonic := range sortedKeys(controlFlowOpcodes) {
		exact(w, 3, decodeControlFlow(mnemonic))
	}

	list = append(list,
		classifier{mask: 0xFFFF, value: opcodeRstTimerCounter, length: 2, decode: decodeTimerCounterReset},
		classifier{mask: 0xFF00, value: opcodeOutTimer, length: 3, decode: decodeTimerCounterOut(DeviceT)},
		classifier{mask: 0xFF00, value: opcodeOutCounter, length: 3, decode: decodeTimerCounterOut(DeviceC)},
		classifier{mask: labelWordMask, value: labelWordValue, length: 1, decode: decodeLabelDefinition},
	)

	for hb, op := range sortedKeys(basicBitOpcodes) {
		list = append(list, classifier{
			mask:   0xFF00,
			value:  uint16(hb) << 8,
			length: 1,
			decode: decodeBasicBit(op),
		})
	}

	return list
}

// sortedKeys yields map entries in ascending key order so that the
// classifier table is built deterministically.
func sortedKeys[K cmp.Ordered, V any](m map[K]V) func(func(K, V) bool) {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return func(yield func(K, V) bool) {
		for _, k := range keys {
			if !yield(k, m[k]) {
				return
			}
		}
	}
}

// raw returns the instruction words for a successfully classified
// instruction of the given length.
func (d *Decoder) raw(offset, length int) ([]uint16, error) {
	words, err := d.mem.Words(offset, length)
	if err != nil {
		return nil, TruncatedOperandError{Offset: offset}
	}
	return words, nil
}

func decodeZeroOperand(mnemonic Mnemonic) decodeFunc {
	return func(d *Decoder, offset int, w1 uint16) (Instruction, error) {
		return Instruction{
			Offset:   offset,
			Length:   1,
			Mnemonic: mnemonic,
			RawWords: []uint16{w1},
		}, nil
	}
}

func decodeBasicBit(op bitOp) decodeFunc {
	return func(d *Decoder, offset int, w1 uint16) (Instruction, error) {
		return Instruction{
			Offset:   offset,
			Length:   1,
			Mnemonic: op.mnemonic,
			Operands: []Operand{BitDevice{Device: op.device, Address: op.base + w1&0xFF}},
			RawWords: []uint16{w1},
		}, nil
	}
}

func decodeBankedBitInstruction(mnemonic Mnemonic) decodeFunc {
	return func(d *Decoder, offset int, w1 uint16) (Instruction, error) {
		w2, err := d.mem.Word(offset + 1)
		if err != nil {
			return Instruction{}, TruncatedOperandError{Offset: offset}
		}
		device, err := decodeBankedBit(offset+1, w2)
		if err != nil {
			return Instruction{}, err
		}
		raw, err := d.raw(offset, 2)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{
			Offset:   offset,
			Length:   2,
			Mnemonic: mnemonic,
			Operands: []Operand{device},
			RawWords: raw,
		}, nil
	}
}

func decodeEnvelopeInstruction(op envelopeOp) decodeFunc {
	return func(d *Decoder, offset int, w1 uint16) (Instruction, error) {
		length := 1 + 2*op.operands
		operands := make([]Operand, 0, op.operands)
		for i := range op.operands {
			operand, err := decodeOperand(d.mem, offset+1+2*i)
			if err != nil {
				return Instruction{}, err
			}
			operands = append(operands, operand)
		}
		raw, err := d.raw(offset, length)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{
			Offset:   offset,
			Length:   length,
			Mnemonic: op.mnemonic,
			Operands: operands,
			RawWords: raw,
		}, nil
	}
}

func decodeControlFlow(mnemonic Mnemonic) decodeFunc {
	return func(d *Decoder, offset int, w1 uint16) (Instruction, error) {
		operand, err := decodeOperand(d.mem, offset+1)
		if err != nil {
			return Instruction{}, err
		}
		pointer, ok := operand.(PointerLabel)
		if !ok {
			return Instruction{}, MalformedError{
				Offset: offset + 1,
				Reason: fmt.Sprintf("%s operand is not pointer tagged", mnemonic),
			}
		}
		raw, err := d.raw(offset, 3)
		if err != nil {
			return Instruction{}, err
		}

		ins := Instruction{
			Offset:   offset,
			Length:   3,
			Mnemonic: mnemonic,
			RawWords: raw,
		}
		if d.labels != nil {
			if target, ok := d.labels.Lookup(pointer.Number); ok {
				pointer.Offset = target
				pointer.Resolved = true
			}
		}
		ins.Operands = []Operand{pointer}
		if !pointer.Resolved {
			return ins, UnresolvedPointerError{Pointer: pointer.Number}
		}
		return ins, nil
	}
}

func decodeTimerCounterOut(kind Device) decodeFunc {
	return func(d *Decoder, offset int, w1 uint16) (Instruction, error) {
		preset, err := decodeOperand(d.mem, offset+1)
		if err != nil {
			return Instruction{}, err
		}
		raw, err := d.raw(offset, 3)
		if err != nil {
			return Instruction{}, err
		}
		return Instruction{
			Offset:   offset,
			Length:   3,
			Mnemonic: Out,
			Operands: []Operand{BitDevice{Device: kind, Address: w1 & 0xFF}, preset},
			RawWords: raw,
		}, nil
	}
}

// decodeTimerCounterReset decodes RST T/C. The second word is a single
// tagged value, not a full operand envelope.
func decodeTimerCounterReset(d *Decoder, offset int, w1 uint16) (Instruction, error) {
	w2, err := d.mem.Word(offset + 1)
	if err != nil {
		return Instruction{}, TruncatedOperandError{Offset: offset}
	}

	var kind Device
	switch uint8(w2 >> 8) {
	case rstTagTimer:
		kind = DeviceT
	case rstTagCounter:
		kind = DeviceC
	default:
		return Instruction{}, MalformedError{
			Offset: offset + 1,
			Reason: fmt.Sprintf("invalid timer/counter reset tag %02X", w2>>8),
		}
	}

	raw, err := d.raw(offset, 2)
	if err != nil {
		return Instruction{}, err
	}
	return Instruction{
		Offset:   offset,
		Length:   2,
		Mnemonic: Rst,
		Operands: []Operand{TimerCounterValue{Kind: kind, Number: w2 & 0xFF}},
		RawWords: raw,
	}, nil
}

// decodeLabelDefinition decodes a label definition word. A second
// definition of an already defined pointer is malformed; the prescan keeps
// the first definition and records the duplicate for this pass to report.
func decodeLabelDefinition(d *Decoder, offset int, w1 uint16) (Instruction, error) {
	if d.labels != nil {
		if dup, ok := d.labels.definitionError(offset); ok {
			return Instruction{}, dup
		}
	}
	pointer := PointerLabel{Number: uint8(w1 & 0xFF), Offset: offset, Resolved: true}
	return Instruction{
		Offset:   offset,
		Length:   1,
		Mnemonic: Label,
		Operands: []Operand{pointer},
		RawWords: []uint16{w1},
	}, nil
}
