// Package goquery implements pagecorpus.Extractor on top of goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagecorpus"
)

// DefaultRemoveTags lists the element names pruned before text extraction.
//
// Entries are compared against element names, not parsed as CSS. The two
// class-looking entries therefore never match anything; they are kept as
// listed so the pruning behaviour stays exactly as observed.
var DefaultRemoveTags = []string{
	"script",
	"style",
	"header",
	"footer",
	"nav",
	".carousel-inner",
	".navbar",
}

// Parse builds a document tree from raw markup.
func Parse(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagecorpus.Errorf(pagecorpus.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// Sanitize deletes, in place, every element whose tag name is in names
// together with its subtree. It returns the number of elements removed.
func Sanitize(doc *goquery.Document, names []string) int {
	remove := make(map[string]bool, len(names))
	for _, name := range names {
		remove[strings.ToLower(name)] = true
	}

	matched := doc.Find("*").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return remove[goquery.NodeName(sel)]
	})
	matched.Remove()
	return matched.Length()
}
