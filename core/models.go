package core

import (
	"encoding/binary"
	"sort"
	"strconv"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities, generated by content hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// PageUnknown is the sentinel page number for segments whose originating
// page could not be determined. Real page numbers are always >= 1.
const PageUnknown = 0

// Segment is a contiguous extract of source document text with provenance
// metadata. Segments are created once by the splitter and read-only after
// that, so they are safe to share across concurrent tasks.
type Segment struct {
	// Content is the extracted text.
	Content string

	// Source is the name of the originating document (base filename).
	Source string

	// Page is the 1-based page number in the originating document, or
	// PageUnknown. Re-splitting a segment must carry this value through
	// unchanged; it is never renumbered from chunk sequence position.
	Page int
}

// WordCount returns the number of whitespace-separated words in the segment.
func (s *Segment) WordCount() int {
	return len(strings.Fields(s.Content))
}

// Empty reports whether the segment has no content beyond whitespace.
func (s *Segment) Empty() bool {
	return strings.TrimSpace(s.Content) == ""
}

// Default classification labels applied when no classifier is configured or
// classification fails.
const (
	DefaultStack       = "Unclassified"
	DefaultCategory    = "General"
	DefaultSubcategory = "Other"
)

// Classification places a Q&A pair in the three-level taxonomy.
type Classification struct {
	Stack       string
	Category    string
	Subcategory string
}

// DefaultClassification returns the fallback classification.
func DefaultClassification() Classification {
	return Classification{
		Stack:       DefaultStack,
		Category:    DefaultCategory,
		Subcategory: DefaultSubcategory,
	}
}

// QAPair is the principal output record: a generated question, its grounded
// answer, and the provenance of the sources that back the answer.
// Pairs are immutable once appended to a result collection.
type QAPair struct {
	Question string
	Answer   string

	// Source is the deduplicated, comma-joined set of originating document
	// names for the segments that grounded the answer.
	Source string

	// Page is the deduplicated set of page numbers backing the answer,
	// rendered in ascending numeric order, comma-joined. Unknown pages
	// render as "?".
	Page string

	// Taxonomy labels. Left at the defaults when no classifier is
	// configured or classification fails.
	Stack       string
	Category    string
	Subcategory string
}

// Apply sets the pair's taxonomy labels from a classification.
func (p *QAPair) Apply(c Classification) {
	p.Stack = c.Stack
	p.Category = c.Category
	p.Subcategory = c.Subcategory
}

// JoinSources deduplicates source names and joins them with ", ".
// Names are sorted for deterministic output.
func JoinSources(sources []string) string {
	seen := make(map[string]struct{}, len(sources))
	unique := make([]string, 0, len(sources))
	for _, s := range sources {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		unique = append(unique, s)
	}
	sort.Strings(unique)
	return strings.Join(unique, ", ")
}

// JoinPages deduplicates page numbers and joins them with ", " in ascending
// numeric order, so that page 10 sorts after page 2, never lexically before
// it. PageUnknown renders as "?" and sorts first.
func JoinPages(pages []int) string {
	seen := make(map[int]struct{}, len(pages))
	unique := make([]int, 0, len(pages))
	for _, p := range pages {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	sort.Ints(unique)
	rendered := make([]string, len(unique))
	for i, p := range unique {
		if p == PageUnknown {
			rendered[i] = "?"
		} else {
			rendered[i] = strconv.Itoa(p)
		}
	}
	return strings.Join(rendered, ", ")
}
