package pagecorpus

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMinFragmentLength is the length a fragment must strictly exceed
// to be kept.
const DefaultMinFragmentLength = 30

// FragmentSeparator separates fragments in an assembled corpus.
const FragmentSeparator = "\n\n"

// blankLines matches a newline, optional whitespace, and another newline.
var blankLines = regexp.MustCompile(`\n\s*\n`)

// NormalizeText collapses every whitespace run into a single space and
// trims the ends. It is idempotent.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// KeepFragment reports whether a normalized fragment is long enough to be
// part of the corpus. Length is counted in characters, not bytes.
func KeepFragment(fragment string, minLength int) bool {
	return fragment != "" && utf8.RuneCountInString(fragment) > minLength
}

// Assemble joins fragments into a corpus, collapsing blank-line runs to a
// single blank line and trimming surrounding whitespace.
func Assemble(fragments []string) string {
	corpus := strings.Join(fragments, FragmentSeparator)
	corpus = blankLines.ReplaceAllString(corpus, FragmentSeparator)
	return strings.TrimSpace(corpus)
}

// Preview returns at most n characters of the corpus.
func Preview(corpus string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(corpus) <= n {
		return corpus
	}
	return string([]rune(corpus)[:n])
}

// CorpusWriter persists an assembled corpus.
type CorpusWriter interface {
	// WriteCorpus replaces the stored corpus with the given text.
	WriteCorpus(ctx context.Context, corpus string) error

	// Path reports where the corpus is written.
	Path() string
}
