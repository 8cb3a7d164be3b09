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

// Fusion weights. Plot text counts most, crew and keywords least.
// They must sum to 1 so the fused score stays a convex combination.
const (
	TextWeight    = 0.4
	GenreWeight   = 0.2
	CastWeight    = 0.2
	CrewWeight    = 0.1
	KeywordWeight = 0.1
)

// SimilarityVector holds the five component scores of one candidate, each in [0,1].
type SimilarityVector struct {
	Text    float64
	Genre   float64
	Cast    float64
	Crew    float64
	Keyword float64
}

// Fused returns the weighted score of the vector.
func (v SimilarityVector) Fused() float64 {
	return Fuse(v.Text, v.Genre, v.Cast, v.Crew, v.Keyword)
}

// Fuse combines one text score and four set scores into a single score.
// The result is clamped to [0,1] to absorb rounding when every input is 1.
func Fuse(text, genre, cast, crew, keyword float64) float64 {
	score := TextWeight*text +
		GenreWeight*genre +
		CastWeight*cast +
		CrewWeight*crew +
		KeywordWeight*keyword
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
