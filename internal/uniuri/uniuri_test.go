package uniuri

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const alphanumeric = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

type failingReader struct {
	reads int
}

func (f *failingReader) Read(_ []byte) (int, error) {
	f.reads++
	return 0, errors.New("entropy pool drained") //nolint:goerr113
}

// fixedSource yields seq followed by an endless run of zero bytes.
func fixedSource(seq ...byte) io.Reader {
	return io.MultiReader(bytes.NewReader(seq), zeroReader{})
}

func wideCharset(n int) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = rune(0x4E00 + i)
	}

	return out
}

func TestSampleDeterministic(t *testing.T) {
	wide := wideCharset(300)

	testCases := []struct {
		name             string
		chars            []rune
		length           int
		source           io.Reader
		expected         string
		expectedDraws    int
		expectedRejected int
	}{
		{
			name:             "three symbols reject 255",
			chars:            []rune("abc"),
			length:           6,
			source:           fixedSource(0, 1, 2, 255, 3, 4, 5),
			expected:         "abcabc",
			expectedDraws:    7,
			expectedRejected: 1,
		},
		{
			name:             "alphanumeric rejects 248 and above",
			chars:            []rune(alphanumeric),
			length:           2,
			source:           fixedSource(248, 255, 247, 62),
			expected:         "Z0",
			expectedDraws:    4,
			expectedRejected: 2,
		},
		{
			name:          "power of two never rejects",
			chars:         []rune("01"),
			length:        4,
			source:        fixedSource(255, 254, 0, 3),
			expected:      "1001",
			expectedDraws: 4,
		},
		{
			name:          "single symbol",
			chars:         []rune("x"),
			length:        3,
			source:        fixedSource(7, 200, 255),
			expected:      "xxx",
			expectedDraws: 3,
		},
		{
			name:             "wide charset uses two byte values",
			chars:            wide,
			length:           2,
			source:           fixedSource(0xFF, 0x78, 0x01, 0x2C, 0x01, 0x2D),
			expected:         string(wide[0:2]),
			expectedDraws:    3,
			expectedRejected: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := NewSampler(tc.source).Sample(tc.chars, tc.length)
			require.NoError(t, err)

			assert.Equal(t, tc.expected, res.Value)
			assert.Equal(t, tc.expectedDraws, res.Draws)
			assert.Equal(t, tc.expectedRejected, res.Rejected)
		})
	}
}

func TestSampleErrors(t *testing.T) {
	testCases := []struct {
		name          string
		chars         []rune
		length        int
		source        io.Reader
		expectedError error
	}{
		{
			name:          "failing source",
			chars:         []rune("abc"),
			length:        10,
			source:        &failingReader{},
			expectedError: ErrEntropyUnavailable,
		},
		{
			name:          "short source",
			chars:         []rune("abc"),
			length:        10,
			source:        bytes.NewReader([]byte{1, 2}),
			expectedError: ErrEntropyUnavailable,
		},
		{
			name:          "empty charset",
			chars:         nil,
			length:        1,
			source:        zeroReader{},
			expectedError: ErrEmptyChars,
		},
		{
			name:          "negative length",
			chars:         []rune("abc"),
			length:        -1,
			source:        zeroReader{},
			expectedError: ErrNegativeLength,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := NewSampler(tc.source).Sample(tc.chars, tc.length)

			require.Error(t, err)
			require.ErrorIs(t, err, tc.expectedError)
			assert.Empty(t, res.Value)
		})
	}
}

func TestSampleZeroLengthReadsNothing(t *testing.T) {
	source := &failingReader{}

	res, err := NewSampler(source).Sample(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "", res.Value)
	assert.Equal(t, 0, source.reads)
}

func TestSampleLengthAndContainment(t *testing.T) {
	for _, length := range []int{1, 7, 32, 1000, 5000} {
		s, err := Sample([]rune("abc"), length)
		require.NoError(t, err)
		assert.Equal(t, length, len([]rune(s)))
		assert.Empty(t, strings.Trim(s, "abc"))
	}

	wide := wideCharset(1000)

	s, err := Sample(wide, 500)
	require.NoError(t, err)

	for _, c := range s {
		assert.True(t, c >= wide[0] && c <= wide[len(wide)-1], "unexpected rune %q", c)
	}
}

func TestSampleUnbiased(t *testing.T) {
	const (
		charset = "abcdefghijklmnopqrstuvwxyz"
		slen    = 1000000
	)

	s, err := Sample([]rune(charset), slen)
	require.NoError(t, err)

	counts := make(map[rune]int)
	for _, c := range s {
		counts[c]++
	}

	avg := float64(slen) / float64(len(charset))
	for _, c := range charset {
		diff := float64(counts[c]) / avg
		assert.True(t, diff > 0.95 && diff < 1.05,
			"bias on %q: expected average is %.0f, got %d", c, avg, counts[c])
	}
}

func TestValueWidthAndLimit(t *testing.T) {
	testCases := []struct {
		clen          int
		expectedWidth int
		expectedLimit uint64
	}{
		{clen: 1, expectedWidth: 1, expectedLimit: 256},
		{clen: 3, expectedWidth: 1, expectedLimit: 255},
		{clen: 26, expectedWidth: 1, expectedLimit: 234},
		{clen: 62, expectedWidth: 1, expectedLimit: 248},
		{clen: 256, expectedWidth: 1, expectedLimit: 256},
		{clen: 257, expectedWidth: 2, expectedLimit: 65535},
		{clen: 300, expectedWidth: 2, expectedLimit: 65400},
		{clen: 65536, expectedWidth: 2, expectedLimit: 65536},
		{clen: 65537, expectedWidth: 3, expectedLimit: 16777216 - 16777216%65537},
	}

	for _, tc := range testCases {
		width := valueWidth(tc.clen)
		assert.Equal(t, tc.expectedWidth, width, "width for %d", tc.clen)
		assert.Equal(t, tc.expectedLimit, rejectLimit(tc.clen, width), "limit for %d", tc.clen)
	}
}

func TestClampBufLen(t *testing.T) {
	assert.Equal(t, maxBufLen, clampBufLen(10000, 1))
	assert.Equal(t, 2046, clampBufLen(10000, 3))
	assert.Equal(t, 2, clampBufLen(1, 2))
	assert.Equal(t, 6, clampBufLen(7, 2))
}

func TestChaChaSource(t *testing.T) {
	key := bytes.Repeat([]byte{0x42}, 32)
	nonce := make([]byte, 12)

	first, err := NewChaChaSource(key, nonce)
	require.NoError(t, err)

	second, err := NewChaChaSource(key, nonce)
	require.NoError(t, err)

	a, err := NewSampler(first).Sample([]rune(alphanumeric), 64)
	require.NoError(t, err)

	b, err := NewSampler(second).Sample([]rune(alphanumeric), 64)
	require.NoError(t, err)

	assert.Equal(t, a, b)

	_, err = NewChaChaSource([]byte("short"), nonce)
	require.Error(t, err)
}

func TestSeededChaChaSourceConcurrent(t *testing.T) {
	source, err := NewSeededChaChaSource()
	require.NoError(t, err)

	sampler := NewSampler(source)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		results = make(map[string]struct{})
	)

	for i := 0; i < 50; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			res, err := sampler.Sample([]rune(alphanumeric), 32)
			assert.NoError(t, err)

			mu.Lock()
			results[res.Value] = struct{}{}
			mu.Unlock()
		}()
	}

	wg.Wait()
	assert.Len(t, results, 50)
}
