package splice

import (
	"fmt"
	"strings"

	"github.com/rakuda/seriesgen/internal/config"
	"github.com/rakuda/seriesgen/internal/util/naming"
)

// Anchors locate the two insertion points of the aggregator.
type Anchors struct {
	// Entry starts the line the import block is inserted before.
	Entry string
	// Closing is the delimiter the registration block is inserted before.
	Closing string
}

// DefaultAnchors returns the anchors of the stock aggregator file.
func DefaultAnchors() Anchors {
	return Anchors{Entry: config.DefaultEntryAnchor, Closing: config.DefaultClosingDelimiter}
}

// Policy decides what a missing entry anchor means.
type Policy int

const (
	// Strict fails with ErrAnchorNotFound.
	Strict Policy = iota
	// Lenient skips the import block and still inserts registrations.
	Lenient
)

// Options configure a splice.
type Options struct {
	Anchors Anchors
	Policy  Policy

	// AllowDuplicate disables the already-spliced guard of Anchored.
	AllowDuplicate bool
}

// OptionsFromSpec builds Options from configuration.
func OptionsFromSpec(s config.SpliceSpec) Options {
	opts := Options{
		Anchors:        Anchors{Entry: s.EntryAnchor, Closing: s.ClosingDelimiter},
		AllowDuplicate: s.AllowDuplicate,
	}
	if s.Lenient {
		opts.Policy = Lenient
	}
	return opts
}

// Fragments is one series' worth of aggregator lines.
type Fragments struct {
	Series        string
	StartPhase    int
	EndPhase      int
	Imports       string
	Registrations string
}

// Banner labels both blocks of a splice.
func (f Fragments) Banner() string {
	return Banner(f.Series, f.StartPhase, f.EndPhase)
}

// Banner returns "// Phase <start>-<end> (<Series> series)".
func Banner(series string, start, end int) string {
	return fmt.Sprintf("// Phase %d-%d (%s series)", start, end, naming.Capitalize(series))
}

// Result reports what a splice changed.
type Result struct {
	Banner string

	// ImportBytes and RegistrationBytes are the lengths of the inserted
	// blocks, zero when a block was skipped.
	ImportBytes       int
	RegistrationBytes int

	// AnchorMissing is set when Lenient skipped the import block.
	AnchorMissing bool

	// SkippedSymbols lists entries Structured left out because they were
	// already present.
	SkippedSymbols []string
}

// Changed reports whether anything was inserted.
func (r *Result) Changed() bool {
	return r.ImportBytes > 0 || r.RegistrationBytes > 0
}

// trimBlock drops the surrounding blank lines of a fragment but keeps the
// indentation of its first line.
func trimBlock(s string) string {
	return strings.Trim(s, "\r\n")
}

// importBlock is inserted before "\n"+entry.
func importBlock(banner, imports string) string {
	return "\n" + banner + "\n" + imports + "\n"
}

// registrationBlock replaces everything from the insertion point up to the
// closing delimiter.
func registrationBlock(banner, regs string) string {
	return "\n  " + banner + "\n" + regs + "\n"
}
