// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/fxgodisasm/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

func parseFlags(name string, args []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	inverse := readOptionFlags(flags, &opts)

	err := flags.Parse(args)
	positional := flags.Args()
	if err != nil || len(positional) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(positional); err != nil {
		return opts, err
	}
	if opts.Hex && opts.Binary {
		return opts, &UsageError{
			flags: flags,
			msg:   "-hex and -binary are mutually exclusive",
		}
	}

	opts.Input = positional[0]
	inverse.apply(&opts)
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the flag defaults and usage line.
func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: fxgodisasm [options] <program image, - for stdin>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks that exactly one positional argument was passed.
func validateArgs(args []string) error {
	if len(args) > 1 {
		return &UsageError{
			msg: fmt.Sprintf("unexpected argument %s after the program image, pass the image as last argument", args[1]),
		}
	}
	return nil
}

// inverseFlags holds the negated listing flags, applied after parsing.
type inverseFlags struct {
	noHexComments bool
	noOffsets     bool
	noLabels      bool
}

func (i inverseFlags) apply(opts *options.Program) {
	opts.Listing.HexComments = !i.noHexComments
	opts.Listing.OffsetComments = !i.noOffsets
	opts.Listing.Labels = !i.noLabels
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) *inverseFlags {
	flags.StringVar(&opts.Output, "o", "", "name of the output listing file, printed on console if no name given")
	flags.BoolVar(&opts.Hex, "hex", false, "read the input as whitespace separated hex words")
	flags.BoolVar(&opts.Binary, "binary", false, "read the input as raw little endian binary")
	flags.BoolVar(&opts.Verify, "verify", false, "verify the decoding by re-encoding all instructions and comparing to the input")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")

	opts.Listing = options.NewListing()
	inverse := &inverseFlags{}
	flags.BoolVar(&inverse.noHexComments, "nohexcomments", false, "do not output instruction words as hex values in comments")
	flags.BoolVar(&inverse.noOffsets, "nooffsets", false, "do not output word offsets in comments")
	flags.BoolVar(&inverse.noLabels, "nolabels", false, "do not output jump pointer label lines")
	return inverse
}
