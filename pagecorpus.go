// Package pagecorpus turns a single web page into a plain-text corpus
// suitable as retrieval input. It fetches the page, strips boilerplate
// markup, keeps the visible text blocks that are long enough to carry
// content, and writes the joined result to a file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, fs/).
package pagecorpus
