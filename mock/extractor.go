package mock

import "github.com/fwojciec/pagecorpus"

var _ pagecorpus.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagecorpus.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]string, error)
}

func (e *Extractor) Extract(html string) ([]string, error) {
	return e.ExtractFn(html)
}
