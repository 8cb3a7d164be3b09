package tfidf

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vectorizer represents a TF-IDF vectorizer
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// NewVectorizer creates a new Vectorizer
func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		vocabulary: make(map[string]int),
	}
}

// Fit fits the vectorizer to the input documents.
// Terms are whitespace separated; columns are assigned in first-seen order.
// IDF is smoothed: ln((1+n)/(1+df)) + 1, so a term present in every document
// keeps a weight of 1 and a term present in one document gets the largest weight.
func (v *Vectorizer) Fit(docs []string) {
	docCount := len(docs)
	termDocCount := make(map[string]int)
	v.vocabulary = make(map[string]int)

	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range strings.Fields(doc) {
			if _, exists := v.vocabulary[term]; !exists {
				v.vocabulary[term] = len(v.vocabulary)
			}
			if !seen[term] {
				termDocCount[term]++
				seen[term] = true
			}
		}
	}

	v.idf = make([]float64, len(v.vocabulary))
	for term, count := range termDocCount {
		v.idf[v.vocabulary[term]] = math.Log(float64(1+docCount)/float64(1+count)) + 1
	}
}

// VocabularySize returns the number of distinct terms seen by Fit.
func (v *Vectorizer) VocabularySize() int {
	return len(v.vocabulary)
}

// Transform transforms the input documents to L2-normalized TF-IDF rows.
// Terms outside the fitted vocabulary are ignored.
func (v *Vectorizer) Transform(docs []string) *Matrix {
	numRows, numCols := len(docs), len(v.vocabulary)
	m := &Matrix{rows: numRows, nonZero: make([]bool, numRows)}
	if numRows == 0 || numCols == 0 {
		return m
	}

	data := make([]float64, numRows*numCols)
	for i, doc := range docs {
		row := data[i*numCols : (i+1)*numCols]
		for _, term := range strings.Fields(doc) {
			if j, ok := v.vocabulary[term]; ok {
				row[j]++
			}
		}
		floats.Mul(row, v.idf)

		norm := floats.Norm(row, 2)
		if norm > 0 {
			floats.Scale(1/norm, row)
			m.nonZero[i] = true
		}
	}

	m.dense = mat.NewDense(numRows, numCols, data)
	return m
}

// FitTransform fits the vectorizer to the input documents and then transforms them
func (v *Vectorizer) FitTransform(docs []string) *Matrix {
	v.Fit(docs)
	return v.Transform(docs)
}
