package cli

import (
	"errors"
	"testing"

	"github.com/retroenv/fxgodisasm/internal/options"
	"github.com/retroenv/retrogolib/assert"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want options.Program
	}{
		{
			name: "default flags",
			args: []string{"test.bin"},
			want: options.Program{
				Input:   "test.bin",
				Listing: options.NewListing(),
			},
		},
		{
			name: "stdin input",
			args: []string{"-"},
			want: options.Program{
				Input:   "-",
				Listing: options.NewListing(),
			},
		},
		{
			name: "output and hex flags",
			args: []string{"-o", "out.lst", "-hex", "test.txt"},
			want: options.Program{
				Input:   "test.txt",
				Output:  "out.lst",
				Hex:     true,
				Listing: options.NewListing(),
			},
		},
		{
			name: "verify flag",
			args: []string{"-verify", "test.bin"},
			want: options.Program{
				Input:   "test.bin",
				Verify:  true,
				Listing: options.NewListing(),
			},
		},
		{
			name: "nohexcomments flag",
			args: []string{"-nohexcomments", "test.bin"},
			want: options.Program{
				Input: "test.bin",
				Listing: options.Listing{
					OffsetComments: true,
					Labels:         true,
				},
			},
		},
		{
			name: "all listing flags disabled",
			args: []string{"-nohexcomments", "-nooffsets", "-nolabels", "test.bin"},
			want: options.Program{
				Input:   "test.bin",
				Listing: options.Listing{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlags("fxgodisasm", tt.args)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no input file", args: []string{}},
		{name: "unknown flag", args: []string{"-unknown", "test.bin"}},
		{name: "argument after input file", args: []string{"test.bin", "-verify"}},
		{name: "hex and binary conflict", args: []string{"-hex", "-binary", "test.bin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFlags("fxgodisasm", tt.args)
			assert.Error(t, err)

			var usageErr *UsageError
			assert.True(t, errors.As(err, &usageErr))
		})
	}
}
