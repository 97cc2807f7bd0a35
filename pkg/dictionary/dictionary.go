// Package dictionary supplies the row streams that pkg/symspell's
// LoadDictionary and LoadBigramDictionary consume. The core index performs
// no I/O itself; every concrete source (flat file, SQL query) lives here,
// each shaped as an io.Reader yielding separator-delimited lines.
package dictionary

import "io"

// Source is the common streaming interface TextSource and SQLSource
// implement: a reader of separator-delimited dictionary or bigram lines,
// the same shape LoadDictionary/LoadBigramDictionary already expect from a
// plain file.
type Source interface {
	io.Reader
}
