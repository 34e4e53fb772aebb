// Package charset turns generation options into the final set of characters a random string is drawn from.
// It knows the built-in presets, the readable filter and capitalization folding, and guarantees that
// the resolved set holds every character exactly once.
package charset
