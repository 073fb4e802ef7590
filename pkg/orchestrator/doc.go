// Package orchestrator wires a generator to a renderer: it prefills the
// generator, picks the renderer from a registry and returns the rendered
// bytes. It applies defaults (contact generator, vanilla renderer) so callers
// can start with a single constructor call.
package orchestrator
