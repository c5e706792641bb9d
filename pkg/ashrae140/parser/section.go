// Package parser locates and reads the fixed report regions of an ASHRAE
// Standard 140 submittal workbook.
package parser

import (
	"errors"
	"fmt"
	"strings"
)

// Section identifies which report layout a submittal follows.
type Section string

const (
	// Section52A is the building thermal envelope and fabric load test
	// report (results5-2a workbooks).
	Section52A Section = "5-2A"
	// Section52B is the ground-coupled slab-on-grade analytical
	// verification report (results5-2b workbooks).
	Section52B Section = "5-2B"
)

// ErrUnsupportedSection indicates a submittal name that matches no known
// report layout, or a lookup keyed by an unrecognized section tag.
var ErrUnsupportedSection = errors.New("unsupported report section")

// sectionSignatures is ordered; the first case-insensitive substring
// match wins. Signatures are mutually exclusive in practice.
var sectionSignatures = []struct {
	pattern string
	section Section
}{
	{"results5-2a", Section52A},
	{"results5-2b", Section52B},
}

// ClassifySection maps a submittal file name to its report section. It
// never guesses: an unmatched name is an ErrUnsupportedSection naming the
// input.
func ClassifySection(name string) (Section, error) {
	lower := strings.ToLower(name)
	for _, sig := range sectionSignatures {
		if strings.Contains(lower, sig.pattern) {
			return sig.section, nil
		}
	}
	return "", fmt.Errorf("%w: file name %q does not match any known submittal pattern", ErrUnsupportedSection, name)
}
