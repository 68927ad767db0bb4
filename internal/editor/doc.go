// Package editor implements the modal text buffer core: a newline-delimited
// document, a screen-relative cursor, a viewport offset into the document,
// and the Navigate/Edit mode machine that decides how key events are
// interpreted.
//
// The package performs no terminal I/O. Painting is done by the renderer
// from a read-only Snapshot, which keeps the whole model testable without a
// terminal. The only filesystem access is loading a document from its path
// and writing it back on an explicit save.
//
// Coordinates come in two flavors. CursorPosition is where the cursor sits
// on the display, bounded by the display size. ViewportOffset is where the
// top-left corner of the display sits in the document. The absolute document
// position is always the sum of the two, and every clamp near a buffer edge
// saturates instead of underflowing.
package editor
