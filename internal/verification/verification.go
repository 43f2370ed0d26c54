// Package verification verifies that the decoded program recreates the input.
package verification

import (
	"errors"
	"fmt"
	"slices"

	"github.com/retroenv/fxgodisasm/internal/fx3u"
	"github.com/retroenv/retrogolib/log"
)

// maxReportedMismatches limits the number of logged mismatch details.
const maxReportedMismatches = 10

// Verify re-encodes every decoded instruction and compares the result
// against the words it was decoded from. Results carrying a decode error
// are skipped, except for instructions with an unresolved jump target,
// which re-encode from the pointer number alone.
func Verify(logger *log.Logger, results []fx3u.Result) error {
	var mismatches uint64

	for _, result := range results {
		if skipResult(result) {
			continue
		}

		encoded, err := fx3u.Encode(result.Instruction)
		if err != nil {
			mismatches++
			if mismatches <= maxReportedMismatches {
				logger.Error("Re-encoding failed",
					log.Hex("offset", result.Offset),
					log.Err(err))
			}
			continue
		}

		if !slices.Equal(encoded, result.Instruction.RawWords) {
			mismatches++
			if mismatches <= maxReportedMismatches {
				logger.Error("Word mismatch",
					log.Hex("offset", result.Offset),
					log.String("expected", fmt.Sprintf("%04X", result.Instruction.RawWords)),
					log.String("got", fmt.Sprintf("%04X", encoded)))
			}
		}
	}

	if mismatches == 0 {
		return nil
	}
	return fmt.Errorf("%d instruction mismatches", mismatches)
}

func skipResult(result fx3u.Result) bool {
	if result.Err == nil {
		return false
	}
	var unresolved fx3u.UnresolvedPointerError
	return !errors.As(result.Err, &unresolved)
}
