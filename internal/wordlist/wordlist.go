// Package wordlist provides the vocabulary words are drawn from.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"strings"
)

//go:embed words.txt
var defaultWords string

// Default returns the built-in vocabulary.
func Default() ([]string, error) {
	return LoadWords(strings.NewReader(defaultWords), LowerASCII)
}

// LoadWords reads one word per line, keeping the words accepted by keep.
// A nil keep accepts every non-empty line.
func LoadWords(r io.Reader, keep FilterFunc) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if keep != nil && !keep(line) {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}
