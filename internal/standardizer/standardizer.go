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

package standardizer

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"

	"github.com/TFMV/MovieMatchPro/pkg/stopwords"
)

// Normalizer turns free text into a normalized token string.
// It is safe for concurrent use; the stop-word set is never modified.
type Normalizer struct {
	stopWords stopwords.Set
}

// NewNormalizer creates a Normalizer backed by the given stop-word set.
func NewNormalizer(stopWords stopwords.Set) *Normalizer {
	return &Normalizer{stopWords: stopWords}
}

// Normalize lowercases text, drops every rune that is not a-z or whitespace,
// tokenizes the rest and removes stop words. Tokens are joined by single spaces.
func (n *Normalizer) Normalize(text string) string {
	text = stripNonLetters(strings.ToLower(text))

	// Collapse runs of whitespace before tokenizing
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return ""
	}

	tokens := tokenize(text)
	kept := tokens[:0]
	for _, tok := range tokens {
		if tok == "" || n.stopWords.Contains(tok) {
			continue
		}
		kept = append(kept, tok)
	}

	return strings.Join(kept, " ")
}

// stripNonLetters removes digits, punctuation and letters outside a-z.
// Removed runes are not replaced, so "sci-fi" becomes "scifi".
func stripNonLetters(text string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, text)
}

func tokenize(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return strings.Fields(text)
	}
	tokens := make([]string, 0, len(doc.Tokens()))
	for _, tok := range doc.Tokens() {
		tokens = append(tokens, strings.TrimSpace(tok.Text))
	}
	return tokens
}
