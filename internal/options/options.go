// Package options contains the program options.
package options

// Program options of the disassembler.
type Program struct {
	Input  string // program image file, "-" for stdin
	Output string // listing output file, printed on console if empty

	Hex    bool // read input as whitespace separated hex words
	Binary bool // read input as raw little endian binary

	Verify bool // re-encode the decoded instructions and compare
	Debug  bool
	Quiet  bool

	Listing Listing
}

// Listing defines options to control the listing output.
type Listing struct {
	HexComments    bool // show the raw instruction words in comments
	OffsetComments bool // show word offsets in comments
	Labels         bool // emit Pn: label lines
}

// NewListing returns a new options instance with default options.
func NewListing() Listing {
	return Listing{
		HexComments:    true,
		OffsetComments: true,
		Labels:         true,
	}
}
