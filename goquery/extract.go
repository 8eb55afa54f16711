package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagecorpus"
)

// ContentSelector matches the elements whose text becomes fragments.
const ContentSelector = "p, h1, h2, h3, li, td, a"

// Ensure Extractor implements pagecorpus.Extractor at compile time.
var _ pagecorpus.Extractor = (*Extractor)(nil)

// Extractor prunes boilerplate elements and collects the normalized text
// of content elements that pass the length filter.
type Extractor struct {
	removeTags []string
	minLength  int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMinLength sets the length a fragment must strictly exceed.
// Defaults to pagecorpus.DefaultMinFragmentLength.
func WithMinLength(n int) Option {
	return func(e *Extractor) {
		e.minLength = n
	}
}

// WithRemoveTags replaces the list of element names pruned before extraction.
// Defaults to DefaultRemoveTags.
func WithRemoveTags(names []string) Option {
	return func(e *Extractor) {
		e.removeTags = names
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		removeTags: DefaultRemoveTags,
		minLength:  pagecorpus.DefaultMinFragmentLength,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses rawHTML, sanitizes it, and returns the kept fragments in
// document order. Nested matches (an <a> inside an <li>) each yield their
// own fragment.
func (e *Extractor) Extract(rawHTML string) ([]string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagecorpus.Errorf(pagecorpus.EINVALID, "empty HTML input")
	}

	doc, err := Parse(rawHTML)
	if err != nil {
		return nil, err
	}

	Sanitize(doc, e.removeTags)

	return Collect(doc, e.minLength), nil
}

// Collect returns the normalized text of every ContentSelector match in
// doc whose length exceeds minLength.
func Collect(doc *goquery.Document, minLength int) []string {
	var fragments []string
	doc.Find(ContentSelector).Each(func(_ int, sel *goquery.Selection) {
		text := pagecorpus.NormalizeText(sel.Text())
		if pagecorpus.KeepFragment(text, minLength) {
			fragments = append(fragments, text)
		}
	})
	return fragments
}
