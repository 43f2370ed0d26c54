package fx3u

// Device identifies a PLC device area addressed by an operand.
type Device uint8

const (
	DeviceInvalid Device = iota

	DeviceS  // step relay
	DeviceX  // input
	DeviceY  // output
	DeviceM  // internal relay
	DeviceT  // timer coil
	DeviceC  // counter coil
	DeviceTS // timer contact
	DeviceCS // counter contact
	DeviceD  // data register
)

var deviceNames = [...]string{
	DeviceS:  "S",
	DeviceX:  "X",
	DeviceY:  "Y",
	DeviceM:  "M",
	DeviceT:  "T",
	DeviceC:  "C",
	DeviceTS: "TS",
	DeviceCS: "CS",
	DeviceD:  "D",
}

// String returns the device area letter used in mnemonic notation.
func (d Device) String() string {
	if int(d) < len(deviceNames) && deviceNames[d] != "" {
		return deviceNames[d]
	}
	return "?"
}
