package anagram

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

// Source produces candidate words for seeding, one word per line, no
// embedded line terminators.
type Source interface {
	Words() ([]string, error)
}

// FileSource reads a plain line-oriented dictionary file.
type FileSource struct {
	Path string
}

// Words reads every line of the file. Open and read failures wrap
// ErrSourceUnavailable so callers can match the kind with errors.Is.
func (fs FileSource) Words() ([]string, error) {
	file, err := os.Open(fs.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, fs.Path, err)
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrSourceUnavailable, fs.Path, err)
	}
	log.Debugf("Read %d dictionary lines from %s", len(words), fs.Path)
	return words, nil
}

// WordList is an in-memory source. Hosts read the dictionary file once
// and reuse the list to re-seed a fresh store per query.
type WordList []string

// Words returns the list as-is.
func (wl WordList) Words() ([]string, error) {
	return wl, nil
}
