// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING WITHOUT LIMITATION THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

// Package stopwords holds the stop-word sets used by the text normalizer.
//
// A Set is immutable once built. Callers load one at startup (English or a
// file given in the configuration) and share it across goroutines.
package stopwords

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed english.txt
var englishList string

// Set is an immutable set of lowercase stop words.
type Set struct {
	words map[string]struct{}
}

// New builds a Set from the given words.
func New(words ...string) Set {
	s := Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		s.words[strings.ToLower(w)] = struct{}{}
	}
	return s
}

// English returns the built-in English stop-word list.
func English() Set {
	s, err := Load(strings.NewReader(englishList))
	if err != nil {
		// The embedded list is a compile-time constant.
		panic(fmt.Sprintf("stopwords: embedded english list: %v", err))
	}
	return s
}

// Load reads one word per line. Blank lines and lines starting with '#' are skipped.
func Load(r io.Reader) (Set, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return Set{}, fmt.Errorf("error reading stop words: %w", err)
	}
	return New(words...), nil
}

// LoadFile loads a stop-word list from disk.
func LoadFile(path string) (Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return Set{}, fmt.Errorf("unable to open stop words file: %w", err)
	}
	defer file.Close()

	return Load(file)
}

// FromPath loads path, or returns the built-in English list when path is empty.
func FromPath(path string) (Set, error) {
	if path == "" {
		return English(), nil
	}
	return LoadFile(path)
}

// Contains reports whether word is a stop word. Matching is exact; the
// normalizer lowercases before asking.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of stop words in the set.
func (s Set) Len() int {
	return len(s.words)
}
