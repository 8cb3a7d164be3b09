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

package matcher

import (
	"sort"

	"github.com/TFMV/MovieMatchPro/internal/catalog"
	"github.com/TFMV/MovieMatchPro/internal/similarity"
	"github.com/TFMV/MovieMatchPro/pkg/tfidf"
)

// RankedResult is one recommendation: a title and its fused score.
type RankedResult struct {
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

// Candidate is a scored catalog entry before truncation.
type Candidate struct {
	Index  int
	Entry  catalog.Entry
	Scores SimilarityVector
	Score  float64
}

// Rank returns the topN entries most similar to the entry titled queryTitle.
// An empty catalog, an unknown title, or topN <= 0 all yield an empty slice.
func Rank(snapshot catalog.Catalog, queryTitle string, topN int) []RankedResult {
	candidates, ok := Score(snapshot, queryTitle)
	if !ok {
		return []RankedResult{}
	}
	return Top(candidates, topN)
}

// Score resolves queryTitle and scores every other entry against it. The
// candidates come back sorted by descending score, ties in catalog order.
// ok is false when the title does not resolve.
func Score(snapshot catalog.Catalog, queryTitle string) ([]Candidate, bool) {
	if snapshot.Len() == 0 {
		return nil, false
	}

	queryIdx, ok := snapshot.Resolve(queryTitle)
	if !ok {
		return nil, false
	}

	text := tfidf.NewVectorizer().FitTransform(snapshot.NormalizedDescriptions())
	textScores := text.SimilaritiesTo(queryIdx)
	query := snapshot.Entry(queryIdx)

	candidates := make([]Candidate, 0, snapshot.Len()-1)
	for i := 0; i < snapshot.Len(); i++ {
		// Exclude by position so duplicate titles stay in the running.
		if i == queryIdx {
			continue
		}
		entry := snapshot.Entry(i)
		scores := SimilarityVector{
			Text:    textScores[i],
			Genre:   similarity.Jaccard(query.Genres, entry.Genres),
			Cast:    similarity.Jaccard(query.Cast, entry.Cast),
			Crew:    similarity.Jaccard(query.Crew, entry.Crew),
			Keyword: similarity.Jaccard(query.Keywords, entry.Keywords),
		}
		candidates = append(candidates, Candidate{
			Index:  i,
			Entry:  entry,
			Scores: scores,
			Score:  scores.Fused(),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	return candidates, true
}

// Top truncates sorted candidates to topN and drops the component scores.
func Top(candidates []Candidate, topN int) []RankedResult {
	if topN <= 0 {
		return []RankedResult{}
	}
	if len(candidates) > topN {
		candidates = candidates[:topN]
	}

	results := make([]RankedResult, len(candidates))
	for i, c := range candidates {
		results[i] = RankedResult{Title: c.Entry.Title, Score: c.Score}
	}
	return results
}
