package listing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/fxgodisasm/internal/fx3u"
)

// Format renders an instruction in the list representation of the
// programming software: mnemonic followed by the operands, X and Y
// addresses in octal, all other device addresses decimal.
func Format(ins fx3u.Instruction) string {
	if len(ins.Operands) == 0 {
		return ins.Mnemonic.String()
	}

	operands := make([]string, 0, len(ins.Operands))
	for _, operand := range ins.Operands {
		operands = append(operands, FormatOperand(operand))
	}
	return ins.Mnemonic.String() + " " + strings.Join(operands, " ")
}

// FormatOperand renders a single operand.
func FormatOperand(operand fx3u.Operand) string {
	switch o := operand.(type) {
	case fx3u.Constant:
		return fmt.Sprintf("K%d", o.Value)

	case fx3u.DataRegister:
		return fmt.Sprintf("D%d", o.Address)

	case fx3u.BitDevice:
		return o.Device.String() + formatAddress(o.Device, o.Address)

	case fx3u.BitDeviceGroup:
		return fmt.Sprintf("K%d%s%d", o.Width, o.Device, o.Base)

	case fx3u.TimerCounterValue:
		return fmt.Sprintf("%s%d", o.Kind, o.Number)

	case fx3u.PointerLabel:
		return fmt.Sprintf("P%d", o.Number)

	default:
		return fmt.Sprintf("?%T", operand)
	}
}

// formatAddress renders a device address. The input and output areas are
// numbered in octal on this controller family.
func formatAddress(device fx3u.Device, address uint16) string {
	switch device {
	case fx3u.DeviceX, fx3u.DeviceY:
		return strconv.FormatUint(uint64(address), 8)
	default:
		return strconv.FormatUint(uint64(address), 10)
	}
}
