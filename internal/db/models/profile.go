// Package models contains database model definitions.
package models

import (
	"time"

	"github.com/go-randomstring/randomstring/internal/charset"
	"github.com/go-randomstring/randomstring/internal/generator"
)

// Profile is a named set of generation options.
// Only the options are stored, never a generated string.
type Profile struct {
	ID             uint64 `gorm:"primaryKey"`
	Name           string `gorm:"uniqueIndex;size:64"`
	Description    string
	Length         int
	Charset        string
	Readable       bool
	Capitalization string `gorm:"size:16"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Options returns the generation options described by the profile.
func (p *Profile) Options() generator.Options {
	return generator.Options{
		Length:         p.Length,
		Charset:        p.Charset,
		Readable:       p.Readable,
		Capitalization: charset.Capitalization(p.Capitalization),
	}
}
