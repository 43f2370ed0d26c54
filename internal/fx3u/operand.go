package fx3u

import "fmt"

// Operand is a decoded instruction operand.
type Operand interface {
	operand()
}

// Constant is a 16 bit K constant value.
type Constant struct {
	Value uint16
}

// DataRegister addresses a D data register through the plain register
// operand envelope.
type DataRegister struct {
	Address uint16
}

// BitDevice addresses a single bit device.
type BitDevice struct {
	Device  Device
	Address uint16
}

// BitDeviceGroup addresses a group of bit devices read as a word value
// (KnM notation): Width counts the 4 bit groups starting at Base.
type BitDeviceGroup struct {
	Device Device
	Base   uint16
	Width  uint16
}

// TimerCounterValue addresses the current value register of a timer,
// counter or data register through the word access operand envelope.
type TimerCounterValue struct {
	Kind   Device // DeviceT, DeviceC or DeviceD
	Number uint16
}

// PointerLabel references a jump pointer. Offset is the absolute word
// offset of the label definition once resolved against the label table.
type PointerLabel struct {
	Number   uint8
	Offset   int
	Resolved bool
}

func (Constant) operand()          {}
func (DataRegister) operand()      {}
func (BitDevice) operand()         {}
func (BitDeviceGroup) operand()    {}
func (TimerCounterValue) operand() {}
func (PointerLabel) operand()      {}

// Operand envelope type tags, the high byte of the first envelope word.
const (
	tagConstant     = 0x80 // K constant
	tagDataRegister = 0x82 // D register
	tagBitGroup     = 0x84 // KnM bit device group
	tagWordAccess   = 0x86 // timer/counter/register current value
	tagPointer      = 0x88 // P jump pointer
)

// Word access sub tags, the high byte of the second envelope word.
const (
	wordAccessD8000 = 0x80
	wordAccessC     = 0x82
	wordAccessT     = 0x84
	wordAccessD     = 0x86
	wordAccessD1000 = 0x88
)

// maxPointer is the highest documented jump pointer number.
const maxPointer = 127

// decodeOperand decodes the two word tagged operand envelope at offset.
// It always consumes exactly two words and never reads beyond them;
// truncation at the program boundary yields TruncatedOperandError.
func decodeOperand(mem Memory, offset int) (Operand, error) {
	w1, err := mem.Word(offset)
	if err != nil {
		return nil, TruncatedOperandError{Offset: offset}
	}
	w2, err := mem.Word(offset + 1)
	if err != nil {
		return nil, TruncatedOperandError{Offset: offset}
	}

	tag := uint8(w1 >> 8)
	low := w1 & 0xFF

	switch tag {
	case tagConstant:
		return Constant{Value: low | (w2&0xFF)<<8}, nil

	case tagDataRegister:
		return DataRegister{Address: low + (w2&0xFF)*256}, nil

	case tagBitGroup:
		return BitDeviceGroup{Device: DeviceM, Base: low, Width: w2}, nil

	case tagWordAccess:
		return decodeWordAccess(offset, low, w2)

	case tagPointer:
		if low > maxPointer {
			return nil, MalformedError{
				Offset: offset,
				Reason: fmt.Sprintf("pointer number %d out of range", low),
			}
		}
		return PointerLabel{Number: uint8(low)}, nil

	default:
		return nil, MalformedError{
			Offset: offset,
			Reason: fmt.Sprintf("invalid operand tag %02X", tag),
		}
	}
}

// decodeWordAccess decodes the current value register form of the operand
// envelope. The raw value is a byte offset into the register file, the
// second word's high byte selects the register area.
func decodeWordAccess(offset int, low, w2 uint16) (Operand, error) {
	raw := low | (w2&0xFF)<<8

	switch uint8(w2 >> 8) {
	case wordAccessT:
		return TimerCounterValue{Kind: DeviceT, Number: raw / 2}, nil
	case wordAccessC:
		return TimerCounterValue{Kind: DeviceC, Number: raw / 2}, nil
	case wordAccessD:
		return TimerCounterValue{Kind: DeviceD, Number: raw / 2}, nil
	case wordAccessD1000:
		return TimerCounterValue{Kind: DeviceD, Number: 1000 + raw/2}, nil
	case wordAccessD8000:
		return TimerCounterValue{Kind: DeviceD, Number: 8000 + raw/2}, nil
	default:
		return nil, MalformedError{
			Offset: offset,
			Reason: fmt.Sprintf("invalid word access tag %02X", w2>>8),
		}
	}
}

// Extended bit instruction device banks used in the second instruction
// word. The special encodings take priority over the generic bank ranges.
const (
	bankM2000First = 0xA8 // M2000+, stride 256
	bankM2000Last  = 0xAF
	bankM8000First = 0x90 // M8000+, stride 32
	bankM8000Last  = 0x9F
	bankS500First  = 0x80 // S500+, stride 256
	bankS500Last   = 0x87
)

// decodeBankedBit decodes the (bank, offset) device address pair used by
// extended and edge triggered bit instructions. Only documented bank
// ranges are accepted; anything else is malformed rather than
// extrapolated.
func decodeBankedBit(offset int, w2 uint16) (BitDevice, error) {
	bank := uint8(w2 >> 8)
	low := w2 & 0xFF

	switch {
	case bank == 0xAA:
		return BitDevice{Device: DeviceM, Address: 2048 + low}, nil
	case w2 == 0xADB8:
		return BitDevice{Device: DeviceM, Address: 3000}, nil
	case w2 == 0x90FF:
		return BitDevice{Device: DeviceM, Address: 8511}, nil
	case bank >= bankM2000First && bank <= bankM2000Last:
		return BitDevice{Device: DeviceM, Address: 2000 + uint16(bank-bankM2000First)*256 + low}, nil
	case bank >= bankM8000First && bank <= bankM8000Last:
		return BitDevice{Device: DeviceM, Address: 8000 + uint16(bank-bankM8000First)*32 + low}, nil
	case bank >= bankS500First && bank <= bankS500Last:
		return BitDevice{Device: DeviceS, Address: 500 + uint16(bank-bankS500First)*256 + low}, nil
	default:
		return BitDevice{}, MalformedError{
			Offset: offset,
			Reason: fmt.Sprintf("invalid extended bit device bank %02X", bank),
		}
	}
}
