package composer

// EditorHandle is the read-only view of the editor widget the router needs.
// The router never mutates the editor through this handle.
type EditorHandle interface {
	// Content returns the current serialized editor content.
	Content() string
	// CaretAtStart reports whether the caret sits at the absolute start.
	CaretAtStart() bool
	// CaretAtEnd reports whether the caret sits at the absolute end.
	CaretAtEnd() bool
}
