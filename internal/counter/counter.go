package counter

import (
	"bufio"
	"io"
	"os"

	"github.com/nao1215/wordcount/internal/model"
)

const (
	// initialBufferSize is the scanner buffer allocated per file.
	initialBufferSize = 64 * 1024

	// MaxTokenSize is the longest single token that can be counted.
	// A file containing a longer run of non-whitespace bytes fails with
	// an OpenError wrapping bufio.ErrTooLong.
	MaxTokenSize = 64 * 1024 * 1024
)

// CountFile reads the file at path and returns its word counts.
// It returns *OpenError if the file cannot be opened or read.
func CountFile(path string) (model.FrequencyTable, error) {
	f, err := os.Open(path) //nolint:gosec // Counting user-supplied paths is the purpose of this tool
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	defer f.Close()

	table, err := Count(f)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	return table, nil
}

// Count tokenizes r on ASCII whitespace and returns the lowercase word
// counts. A word appearing k times has count k.
func Count(r io.Reader) (model.FrequencyTable, error) {
	table := model.NewFrequencyTable()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufferSize), MaxTokenSize)
	scanner.Split(ScanASCIIWords)

	for scanner.Scan() {
		table[lowerASCIIBytes(scanner.Bytes())]++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return table, nil
}

// ScanASCIIWords is a bufio.SplitFunc that returns each run of bytes
// delimited by ASCII whitespace. Unlike bufio.ScanWords it does not decode
// UTF-8, so non-ASCII spaces such as U+00A0 are part of a word.
func ScanASCIIWords(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isASCIISpace(data[start]) {
		start++
	}

	for i := start; i < len(data); i++ {
		if isASCIISpace(data[i]) {
			return i + 1, data[start:i], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	// Request more data, keeping the leading whitespace consumed.
	return start, nil, nil
}

// ToLowerASCII maps the bytes 'A'-'Z' to 'a'-'z' and leaves every other
// byte untouched.
func ToLowerASCII(s string) string {
	return lowerASCIIBytes([]byte(s))
}

// lowerASCIIBytes returns a lowercase string copy of b.
func lowerASCIIBytes(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}

// isASCIISpace reports whether c is one of ' ', '\t', '\n', '\v', '\f', '\r'.
func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
