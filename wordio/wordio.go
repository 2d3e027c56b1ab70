package wordio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors for reading word files.
var (
	// ErrOpen is returned when an input file cannot be opened.
	ErrOpen = errors.New("wordio: cannot open file")

	// ErrRead is returned when reading an input stream fails midway.
	ErrRead = errors.New("wordio: read failed")
)

// trailing holds the characters TrimWord strips from the right.
const trailing = "\r\t "

// maxLine bounds a single line; longer lines are a read error.
const maxLine = 1 << 20

// TrimWord removes trailing carriage returns, tabs and spaces.
func TrimWord(s string) string {
	return strings.TrimRight(s, trailing)
}

// newScanner returns a line scanner with a 1 MiB line limit.
func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	return sc
}

// ReadAnchors reads the end word from the first line and the begin word from
// the second. A missing line yields an empty word.
func ReadAnchors(r io.Reader) (begin, end string, err error) {
	sc := newScanner(r)
	if sc.Scan() {
		end = TrimWord(sc.Text())
	}
	if sc.Scan() {
		begin = TrimWord(sc.Text())
	}
	if err = sc.Err(); err != nil {
		return "", "", fmt.Errorf("%w: anchors: %v", ErrRead, err)
	}

	return begin, end, nil
}

// ReadDictionary reads one candidate per line, in order.
func ReadDictionary(r io.Reader) ([]string, error) {
	sc := newScanner(r)
	var words []string
	for sc.Scan() {
		words = append(words, TrimWord(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: dictionary after %d words: %v", ErrRead, len(words), err)
	}

	return words, nil
}

// LoadAnchors opens path and calls ReadAnchors.
func LoadAnchors(path string) (begin, end string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	defer f.Close()

	return ReadAnchors(f)
}

// LoadDictionary opens path and calls ReadDictionary.
func LoadDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpen, path, err)
	}
	defer f.Close()

	return ReadDictionary(f)
}
