// Package main provides the entry point of randomstring.
// It generates random strings from preset or custom charsets on the command
// line, or serves them through a JSON web service built on the Fiber framework.
// Named generation profiles are kept in a database through gorm.
package main
