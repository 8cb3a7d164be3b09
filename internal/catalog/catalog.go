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

// Package catalog defines the movie snapshot the ranking engine reads.
//
// A Catalog is built once per request from the records a Source returns and
// is never mutated afterwards, so it can be shared freely between goroutines.
package catalog

import (
	"context"
	"strings"

	"github.com/TFMV/MovieMatchPro/internal/similarity"
)

// Record is one movie as delivered by a data source.
type Record struct {
	ID          string
	Title       string
	Description string
	Genres      []string
	Cast        []string
	Crew        []string
	Keywords    []string
}

// Source supplies the full catalog, in a stable order, on every call.
type Source interface {
	FetchCatalog(ctx context.Context) ([]Record, error)
}

// Normalizer produces the normalized description stored on every entry.
type Normalizer interface {
	Normalize(text string) string
}

// Entry is a catalog record with its name lists turned into sets and its
// description normalized. Entries are read-only.
type Entry struct {
	ID                    string
	Title                 string
	Description           string
	NormalizedDescription string
	Genres                similarity.NameSet
	Cast                  similarity.NameSet
	Crew                  similarity.NameSet
	Keywords              similarity.NameSet
}

// Catalog is an ordered, immutable snapshot of entries.
type Catalog struct {
	entries []Entry
}

// New builds a snapshot from records, normalizing each description exactly once.
// Record order is preserved.
func New(records []Record, normalizer Normalizer) Catalog {
	entries := make([]Entry, len(records))
	for i, rec := range records {
		entries[i] = Entry{
			ID:                    rec.ID,
			Title:                 rec.Title,
			Description:           rec.Description,
			NormalizedDescription: normalizer.Normalize(rec.Description),
			Genres:                similarity.NewNameSet(rec.Genres...),
			Cast:                  similarity.NewNameSet(rec.Cast...),
			Crew:                  similarity.NewNameSet(rec.Crew...),
			Keywords:              similarity.NewNameSet(rec.Keywords...),
		}
	}
	return Catalog{entries: entries}
}

// Len returns the number of entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Entry returns the entry at index i.
func (c Catalog) Entry(i int) Entry {
	return c.entries[i]
}

// NormalizedDescriptions returns the normalized text of every entry in catalog order.
func (c Catalog) NormalizedDescriptions() []string {
	docs := make([]string, len(c.entries))
	for i := range c.entries {
		docs[i] = c.entries[i].NormalizedDescription
	}
	return docs
}

// Resolve finds the first entry whose title equals title, ignoring case.
// There is no partial matching.
func (c Catalog) Resolve(title string) (int, bool) {
	want := strings.ToLower(title)
	for i := range c.entries {
		if strings.ToLower(c.entries[i].Title) == want {
			return i, true
		}
	}
	return -1, false
}
