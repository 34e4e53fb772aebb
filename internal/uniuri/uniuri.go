package uniuri

import (
	"io"
	"math"

	"github.com/pkg/errors"
)

const (
	// maxBufLen is the maximum length of a temporary buffer for random bytes.
	maxBufLen = 2048

	// minRegenBufLen is the minimum length of temporary buffer for random bytes
	// to fill after the first read didn't produce the full result.
	// If the initial buffer is smaller, this value is ignored.
	// Rationale: for performance, assume it's pointless to request fewer bytes from the source.
	minRegenBufLen = 16

	// maxWidth is the widest raw value in bytes, enough to index 2^32 symbols.
	maxWidth = 4
)

// Result is the output of a single Sample call.
type Result struct {
	Value    string
	Draws    int // raw values taken from the source
	Rejected int // raw values discarded to avoid modulo bias
}

// Sampler draws uniformly distributed characters from a random byte source.
// It holds no state besides the source, so it is safe for concurrent use
// whenever the source is.
type Sampler struct {
	source io.Reader
}

// NewSampler returns a Sampler reading from source. A nil source selects CryptoSource.
func NewSampler(source io.Reader) *Sampler {
	if source == nil {
		source = CryptoSource
	}

	return &Sampler{source: source}
}

// Sample returns a string of exactly length characters, each drawn independently
// and uniformly from chars. chars is expected to hold distinct runes; duplicates
// are correspondingly more likely.
//
// Raw values are read big endian, width bytes at a time, and values at or above the
// largest multiple of len(chars) that fits the raw range are rejected.
func (s *Sampler) Sample(chars []rune, length int) (Result, error) {
	var res Result

	if length < 0 {
		return res, errors.Wrapf(ErrNegativeLength, "got %d", length)
	}

	if length == 0 {
		return res, nil
	}

	clen := len(chars)
	if clen == 0 {
		return res, ErrEmptyChars
	}

	width := valueWidth(clen)
	limit := rejectLimit(clen, width)

	bufLen := clampBufLen(estimatedBufLen(length, limit, width)*width, width)
	buf := make([]byte, bufLen) // storage for random bytes
	out := make([]rune, 0, length)

	for {
		if _, err := io.ReadFull(s.source, buf[:bufLen]); err != nil {
			return Result{}, errors.Wrapf(ErrEntropyUnavailable, "read %d random bytes: %v", bufLen, err)
		}

		for off := 0; off+width <= bufLen; off += width {
			v := readValue(buf[off : off+width])
			res.Draws++

			if v >= limit {
				// Skip this number to avoid modulo bias.
				res.Rejected++
				continue
			}

			out = append(out, chars[v%uint64(clen)])
			if len(out) == length {
				res.Value = string(out)
				return res, nil
			}
		}

		// Adjust new requested length, but no smaller than minRegenBufLen.
		bufLen = estimatedBufLen(length-len(out), limit, width) * width
		if bufLen < minRegenBufLen && minRegenBufLen <= cap(buf) {
			bufLen = minRegenBufLen
		}

		bufLen = clampBufLen(bufLen, width)
		if bufLen > cap(buf) {
			buf = make([]byte, bufLen)
		}
	}
}

// Sample draws length characters from chars using CryptoSource.
func Sample(chars []rune, length int) (string, error) {
	res, err := NewSampler(nil).Sample(chars, length)

	return res.Value, err
}

// valueWidth returns the number of raw bytes needed to index clen symbols.
func valueWidth(clen int) int {
	width := 1
	for width < maxWidth && uint64(clen) > uint64(1)<<(8*width) {
		width++
	}

	return width
}

// rejectLimit returns the largest multiple of clen that fits into 256^width.
// Raw values at or above it are rejected.
func rejectLimit(clen, width int) uint64 {
	rangeSize := uint64(1) << (8 * width)

	return rangeSize - rangeSize%uint64(clen)
}

// estimatedBufLen returns the estimated number of raw values to request
// given that values at or above limit will be rejected.
func estimatedBufLen(need int, limit uint64, width int) int {
	rangeSize := float64(uint64(1) << (8 * width))

	return int(math.Ceil(float64(need) * (rangeSize / float64(limit))))
}

// clampBufLen keeps a byte count between one raw value and maxBufLen, rounded down to whole values.
func clampBufLen(bufLen, width int) int {
	if bufLen > maxBufLen {
		bufLen = maxBufLen
	}

	bufLen -= bufLen % width
	if bufLen < width {
		bufLen = width
	}

	return bufLen
}

func readValue(b []byte) uint64 {
	var v uint64
	for _, c := range b {
		v = v<<8 | uint64(c)
	}

	return v
}
