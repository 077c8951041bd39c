// Package markdown implements the block and inline parsing shared by the
// message renderer and the notes preview, plus file-type auto-detection.
// It is a best-effort formatter, not a validating parser: parsing is
// deterministic and total, and malformed input degrades instead of erroring.
package markdown

// Dialect selects per-consumer parsing capabilities. The message renderer
// and the notes preview share one parser and differ only here.
type Dialect struct {
	Checkboxes bool
	Links      bool
}

// ChatDialect returns the message-renderer dialect: checkbox lines parse as
// plain bullets and link syntax stays literal.
func ChatDialect() Dialect {
	return Dialect{}
}

// PreviewDialect returns the notes-preview dialect with checkbox blocks and
// link spans enabled.
func PreviewDialect() Dialect {
	return Dialect{Checkboxes: true, Links: true}
}
