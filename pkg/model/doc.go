// Package model defines the renderer-agnostic description of a generator form.
// A Layout is an ordered list of rows; each row pairs a label with the
// identifier of the input it is bound to. Renderers (prompt sessions, the
// interactive terminal form, HTML) walk the rows in order and never need to
// know which generator produced them. Field identifiers are plain strings so
// values and errors can be keyed by them in RenderOptions maps.
package model
