package fx3u

// Mnemonic is the stable enumerated identifier of an instruction.
// The string form matches the documented mnemonic names.
type Mnemonic uint8

const (
	Invalid Mnemonic = iota

	// bit instructions
	Ld
	Ldi
	And
	Ani
	Or
	Ori
	Out
	Set
	Rst

	// edge triggered bit instructions
	Ldp
	Ldf
	Andp
	Andf
	Orp
	Orf

	// compare instructions
	LdEq
	LdGt
	LdLt
	LdLe
	LdGe
	AndEq
	AndGt
	AndLt
	AndLe
	AndGe

	// application instructions
	Mov
	Movp
	Add
	Addp
	Sub
	Subp
	Mul
	Mulp
	Div
	Divp

	// program control
	Cj
	Call
	Ret
	End

	// stack and logic block tokens
	Mps
	Mrd
	Mpp
	Orb
	Anb
	Inv

	// label definition word
	Label
)

var mnemonicNames = [...]string{
	Ld:    "LD",
	Ldi:   "LDI",
	And:   "AND",
	Ani:   "ANI",
	Or:    "OR",
	Ori:   "ORI",
	Out:   "OUT",
	Set:   "SET",
	Rst:   "RST",
	Ldp:   "LDP",
	Ldf:   "LDF",
	Andp:  "ANDP",
	Andf:  "ANDF",
	Orp:   "ORP",
	Orf:   "ORF",
	LdEq:  "LD=",
	LdGt:  "LD>",
	LdLt:  "LD<",
	LdLe:  "LD<=",
	LdGe:  "LD>=",
	AndEq: "AND=",
	AndGt: "AND>",
	AndLt: "AND<",
	AndLe: "AND<=",
	AndGe: "AND>=",
	Mov:   "MOV",
	Movp:  "MOVP",
	Add:   "ADD",
	Addp:  "ADDP",
	Sub:   "SUB",
	Subp:  "SUBP",
	Mul:   "MUL",
	Mulp:  "MULP",
	Div:   "DIV",
	Divp:  "DIVP",
	Cj:    "CJ",
	Call:  "CALL",
	Ret:   "RET",
	End:   "END",
	Mps:   "MPS",
	Mrd:   "MRD",
	Mpp:   "MPP",
	Orb:   "ORB",
	Anb:   "ANB",
	Inv:   "INV",
	Label: "LABEL",
}

// String returns the documented mnemonic name.
func (m Mnemonic) String() string {
	if int(m) < len(mnemonicNames) && mnemonicNames[m] != "" {
		return mnemonicNames[m]
	}
	return "INVALID"
}
