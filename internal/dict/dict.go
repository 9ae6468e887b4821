// Package dict turns raw word-list lines into the deduplicated candidate set
// the search engine runs over. Lines that are not five ASCII letters, and
// words with a repeated letter, are dropped here so the engine only ever sees
// masks with exactly five bits set.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"quintet/internal/mask"
)

// StdinToken is the input path that selects standard input.
const StdinToken = "-"

// Canonical validates and normalizes a single input line. It returns the
// lowercased word and true when the line is exactly five ASCII letters with
// no letter repeated; otherwise false.
func Canonical(line string) (string, bool) {
	if len(line) != mask.WordLength {
		return "", false
	}

	buf := make([]byte, mask.WordLength)
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch >= 'a' && ch <= 'z':
		case ch >= 'A' && ch <= 'Z':
			ch += 'a' - 'A'
		default:
			return "", false
		}
		buf[i] = ch
	}

	word := string(buf)
	if mask.Encode(word).Popcount() != mask.WordLength {
		// Repeated letter: the word can never join a 25-letter group.
		return "", false
	}
	return word, true
}

// ReadWords consumes a line-oriented word list, silently skipping lines that
// fail Canonical. Only I/O failures are errors.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if word, ok := Canonical(scanner.Text()); ok {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}

	return words, nil
}

// Open resolves an input argument to a reader. The token "-" selects stdin,
// anything else is treated as a file path.
func Open(path string) (io.ReadCloser, error) {
	if path == StdinToken {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	return f, nil
}
