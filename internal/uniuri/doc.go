// Package uniuri generates cryptographically secure random strings from an arbitrary set of characters.
// Indices are chosen by rejection sampling over raw random values, so every character of the set
// is equally likely no matter whether the set size divides the raw value range.
// The byte source is injectable; CryptoSource is used unless another one is given.
package uniuri
