package anagram

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("eat\nate\ntea\n"), 0644); err != nil {
		t.Fatal(err)
	}

	words, err := FileSource{Path: path}.Words()
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if !reflect.DeepEqual(words, []string{"eat", "ate", "tea"}) {
		t.Errorf("Words = %v", words)
	}
}

func TestWordList(t *testing.T) {
	words, err := WordList{"one", "two"}.Words()
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if len(words) != 2 {
		t.Errorf("Words = %v", words)
	}
}
