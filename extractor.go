package pagecorpus

// Extractor turns raw page markup into text fragments, removing boilerplate.
type Extractor interface {
	// Extract parses the markup, prunes non-content subtrees, and returns
	// the normalized text of every matched content node that passes the
	// length filter. Fragments are returned in document order.
	Extract(html string) ([]string, error)
}
