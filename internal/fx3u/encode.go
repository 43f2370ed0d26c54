package fx3u

import "fmt"

// Encode re-encodes a decoded instruction into program words. It produces
// the canonical encoding of each instruction family; for instructions
// decoded from canonically encoded captures the result reproduces
// RawWords exactly. Field combinations without a documented encoding
// return an error.
func Encode(ins Instruction) ([]uint16, error) {
	mnemonic := ins.Mnemonic

	if w, ok := controlWords[mnemonic]; ok {
		return []uint16{w}, nil
	}
	if mnemonic == Label {
		pointer, err := pointerOperand(ins)
		if err != nil {
			return nil, err
		}
		return []uint16{labelWord(pointer.Number)}, nil
	}
	if w, ok := controlFlowWords[mnemonic]; ok {
		pointer, err := pointerOperand(ins)
		if err != nil {
			return nil, err
		}
		return []uint16{w, tagPointer<<8 | uint16(pointer.Number), pointerEnvelopeSecondWord}, nil
	}
	if w, ok := compareWords[mnemonic]; ok {
		return encodeEnvelopes(w, ins)
	}
	if w, ok := applicationWords[mnemonic]; ok {
		return encodeEnvelopes(w, ins)
	}
	if w, ok := pulsedWords[mnemonic]; ok {
		return encodeBankedInstruction(w, ins)
	}

	return encodeBitInstruction(ins)
}

// pointerEnvelopeSecondWord is the constant second word of pointer tagged
// operand envelopes as observed in program captures.
const pointerEnvelopeSecondWord = 0x8000

// Reverse lookup tables, derived from the decode tables.
var (
	controlWords     = reverseOpcodes(controlOpcodes)
	controlFlowWords = reverseOpcodes(controlFlowOpcodes)
	pulsedWords      = reverseOpcodes(pulsedBitOpcodes)
	compareWords     = reverseEnvelopeOpcodes(compareOpcodes)
	applicationWords = reverseEnvelopeOpcodes(applicationOpcodes)

	basicBitRows = reverseBasicBitOpcodes(basicBitOpcodes)

	// Extended bit first words. The load style instructions share one
	// opcode per mnemonic, the coil style ones split by device area.
	extendedLoadWords = map[Mnemonic]uint16{
		Ld: 0x01C2, Ldi: 0x01C3, And: 0x01C4, Ani: 0x01C5, Or: 0x01C6, Ori: 0x01C7,
	}
	extendedCoilWordsM = map[Mnemonic]uint16{Out: 0x0002, Set: 0x0003, Rst: 0x0004}
	extendedCoilWordsS = map[Mnemonic]uint16{Out: 0x0005, Set: 0x0006, Rst: 0x0007}
)

func reverseOpcodes(m map[uint16]Mnemonic) map[Mnemonic]uint16 {
	r := make(map[Mnemonic]uint16, len(m))
	for w, mnemonic := range m {
		r[mnemonic] = w
	}
	return r
}

func reverseEnvelopeOpcodes(m map[uint16]envelopeOp) map[Mnemonic]uint16 {
	r := make(map[Mnemonic]uint16, len(m))
	for w, op := range m {
		r[op.mnemonic] = w
	}
	return r
}

// bitRow is one basic bit encoding alternative for a mnemonic and device:
// the opcode high byte and the bank base it addresses.
type bitRow struct {
	highByte uint8
	base     uint16
}

type bitKey struct {
	mnemonic Mnemonic
	device   Device
}

func reverseBasicBitOpcodes(m map[uint8]bitOp) map[bitKey][]bitRow {
	r := map[bitKey][]bitRow{}
	for hb, op := range m {
		key := bitKey{mnemonic: op.mnemonic, device: op.device}
		r[key] = append(r[key], bitRow{highByte: hb, base: op.base})
	}
	return r
}

func pointerOperand(ins Instruction) (PointerLabel, error) {
	if len(ins.Operands) != 1 {
		return PointerLabel{}, fmt.Errorf("%s: expected one pointer operand, got %d", ins.Mnemonic, len(ins.Operands))
	}
	pointer, ok := ins.Operands[0].(PointerLabel)
	if !ok {
		return PointerLabel{}, fmt.Errorf("%s: operand %T is not a pointer", ins.Mnemonic, ins.Operands[0])
	}
	return pointer, nil
}

// encodeEnvelopes encodes an instruction followed by one operand envelope
// per operand.
func encodeEnvelopes(w1 uint16, ins Instruction) ([]uint16, error) {
	words := make([]uint16, 0, 1+2*len(ins.Operands))
	words = append(words, w1)
	for _, operand := range ins.Operands {
		envelope, err := encodeOperand(operand)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ins.Mnemonic, err)
		}
		words = append(words, envelope...)
	}
	return words, nil
}

// encodeOperand encodes the two word tagged operand envelope.
func encodeOperand(operand Operand) ([]uint16, error) {
	switch o := operand.(type) {
	case Constant:
		return []uint16{tagConstant<<8 | o.Value&0xFF, o.Value >> 8}, nil

	case DataRegister:
		return []uint16{tagDataRegister<<8 | o.Address%256, o.Address / 256}, nil

	case BitDeviceGroup:
		if o.Device != DeviceM {
			return nil, fmt.Errorf("no group encoding for device %s", o.Device)
		}
		return []uint16{tagBitGroup<<8 | o.Base&0xFF, o.Width}, nil

	case TimerCounterValue:
		return encodeWordAccess(o)

	case PointerLabel:
		return []uint16{tagPointer<<8 | uint16(o.Number), pointerEnvelopeSecondWord}, nil

	default:
		return nil, fmt.Errorf("operand %T has no envelope encoding", operand)
	}
}

func encodeWordAccess(o TimerCounterValue) ([]uint16, error) {
	var subTag uint16
	number := o.Number

	switch o.Kind {
	case DeviceT:
		subTag = wordAccessT
	case DeviceC:
		subTag = wordAccessC
	case DeviceD:
		switch {
		case number >= 8000:
			subTag = wordAccessD8000
			number -= 8000
		case number >= 1000:
			subTag = wordAccessD1000
			number -= 1000
		default:
			subTag = wordAccessD
		}
	default:
		return nil, fmt.Errorf("no word access encoding for device %s", o.Kind)
	}

	raw := number * 2
	return []uint16{tagWordAccess<<8 | raw&0xFF, subTag<<8 | raw>>8}, nil
}

// encodeBitInstruction encodes the bit instruction families that share
// mnemonics: basic one word forms, extended banked forms, timer/counter
// coil outputs and timer/counter resets.
func encodeBitInstruction(ins Instruction) ([]uint16, error) {
	switch len(ins.Operands) {
	case 1:
	case 2:
		if ins.Mnemonic == Out {
			return encodeTimerCounterOut(ins)
		}
		fallthrough
	default:
		return nil, fmt.Errorf("%s: unexpected operand count %d", ins.Mnemonic, len(ins.Operands))
	}

	switch operand := ins.Operands[0].(type) {
	case TimerCounterValue:
		// RST T/C form
		if ins.Mnemonic != Rst {
			return nil, fmt.Errorf("%s: no encoding for a timer/counter value operand", ins.Mnemonic)
		}
		return encodeTimerCounterReset(operand)

	case BitDevice:
		// a two word capture is the extended form, LD/LDI M8000+ would
		// otherwise also match the one word 0x2F/0x3F rows
		if ins.Length == 2 {
			return encodeExtendedBit(ins.Mnemonic, operand)
		}
		if words, err := encodeBasicBit(ins.Mnemonic, operand); err == nil {
			return words, nil
		}
		return encodeExtendedBit(ins.Mnemonic, operand)

	default:
		return nil, fmt.Errorf("%s: operand %T is not a bit device", ins.Mnemonic, ins.Operands[0])
	}
}

func encodeBasicBit(mnemonic Mnemonic, device BitDevice) ([]uint16, error) {
	for _, row := range basicBitRows[bitKey{mnemonic: mnemonic, device: device.Device}] {
		if device.Address >= row.base && device.Address-row.base <= 0xFF {
			return []uint16{uint16(row.highByte)<<8 | (device.Address - row.base)}, nil
		}
	}
	return nil, fmt.Errorf("%s: no basic encoding for %s%d", mnemonic, device.Device, device.Address)
}

// encodeBankedInstruction encodes a two word instruction with a fixed
// first word and a banked bit device in the second, the edge triggered
// bit instruction form.
func encodeBankedInstruction(w1 uint16, ins Instruction) ([]uint16, error) {
	if len(ins.Operands) != 1 {
		return nil, fmt.Errorf("%s: unexpected operand count %d", ins.Mnemonic, len(ins.Operands))
	}
	device, ok := ins.Operands[0].(BitDevice)
	if !ok {
		return nil, fmt.Errorf("%s: operand %T is not a bit device", ins.Mnemonic, ins.Operands[0])
	}
	w2, err := encodeBankedBit(device)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ins.Mnemonic, err)
	}
	return []uint16{w1, w2}, nil
}

func encodeExtendedBit(mnemonic Mnemonic, device BitDevice) ([]uint16, error) {
	var w1 uint16
	var ok bool

	if w1, ok = extendedLoadWords[mnemonic]; !ok {
		switch device.Device {
		case DeviceM:
			w1, ok = extendedCoilWordsM[mnemonic]
		case DeviceS:
			w1, ok = extendedCoilWordsS[mnemonic]
		}
		if !ok {
			return nil, fmt.Errorf("%s: no extended encoding for device %s", mnemonic, device.Device)
		}
	}

	w2, err := encodeBankedBit(device)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mnemonic, err)
	}
	return []uint16{w1, w2}, nil
}

// encodeBankedBit is the inverse of decodeBankedBit. The special
// encodings take priority, mirroring the decode order.
func encodeBankedBit(device BitDevice) (uint16, error) {
	a := device.Address

	switch device.Device {
	case DeviceM:
		switch {
		case a >= 2048 && a <= 2303:
			return 0xAA00 | (a - 2048), nil
		case a == 3000:
			return 0xADB8, nil
		case a == 8511:
			return 0x90FF, nil
		case a >= 2000 && a < 2000+8*256:
			w := (uint16(bankM2000First)+(a-2000)/256)<<8 | (a-2000)%256
			// words shadowed by the special codings decode to a
			// different address, those relays have no encoding
			if uint8(w>>8) == 0xAA || w == 0xADB8 {
				break
			}
			return w, nil
		case a >= 8000 && a < 8000+16*32:
			return (uint16(bankM8000First)+(a-8000)/32)<<8 | (a-8000)%32, nil
		}
	case DeviceS:
		if a >= 500 && a < 500+8*256 {
			return (uint16(bankS500First)+(a-500)/256)<<8 | (a-500)%256, nil
		}
	}
	return 0, fmt.Errorf("no banked encoding for %s%d", device.Device, a)
}

func encodeTimerCounterOut(ins Instruction) ([]uint16, error) {
	coil, ok := ins.Operands[0].(BitDevice)
	if !ok {
		return nil, fmt.Errorf("OUT: operand %T is not a timer/counter coil", ins.Operands[0])
	}
	var w1 uint16
	switch coil.Device {
	case DeviceT:
		w1 = opcodeOutTimer | coil.Address&0xFF
	case DeviceC:
		w1 = opcodeOutCounter | coil.Address&0xFF
	default:
		return nil, fmt.Errorf("OUT: no preset encoding for device %s", coil.Device)
	}

	preset, err := encodeOperand(ins.Operands[1])
	if err != nil {
		return nil, fmt.Errorf("OUT: %w", err)
	}
	return append([]uint16{w1}, preset...), nil
}

func encodeTimerCounterReset(value TimerCounterValue) ([]uint16, error) {
	var tag uint16
	switch value.Kind {
	case DeviceT:
		tag = rstTagTimer
	case DeviceC:
		tag = rstTagCounter
	default:
		return nil, fmt.Errorf("RST: no reset encoding for device %s", value.Kind)
	}
	if value.Number > 0xFF {
		return nil, fmt.Errorf("RST: %s%d out of range", value.Kind, value.Number)
	}
	return []uint16{opcodeRstTimerCounter, tag<<8 | value.Number}, nil
}
