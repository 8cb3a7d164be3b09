package tfidf

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Matrix holds one unit-length TF-IDF row per document.
// Rows built from empty text are zero vectors.
type Matrix struct {
	dense   *mat.Dense
	rows    int
	nonZero []bool
}

// Len returns the number of documents.
func (m *Matrix) Len() int {
	return m.rows
}

// IsZero reports whether row i is a zero vector.
func (m *Matrix) IsZero(i int) bool {
	m.checkRow(i)
	return !m.nonZero[i]
}

// Similarity returns the cosine similarity of rows i and j in [0,1].
// A non-zero row is exactly 1.0 against itself; a zero row is 0.0 against anything.
func (m *Matrix) Similarity(i, j int) float64 {
	m.checkRow(i)
	m.checkRow(j)
	if !m.nonZero[i] || !m.nonZero[j] {
		return 0
	}
	if i == j {
		return 1
	}
	return clamp(mat.Dot(m.dense.RowView(i), m.dense.RowView(j)))
}

// SimilaritiesTo returns the similarity of row i to every row, in row order.
// The result is empty when the matrix has no rows.
func (m *Matrix) SimilaritiesTo(i int) []float64 {
	if m.rows == 0 {
		return []float64{}
	}
	m.checkRow(i)

	sims := make([]float64, m.rows)
	if !m.nonZero[i] {
		return sims
	}

	var dots mat.VecDense
	dots.MulVec(m.dense, m.dense.RowView(i))
	for j := range sims {
		switch {
		case !m.nonZero[j]:
			sims[j] = 0
		case j == i:
			sims[j] = 1
		default:
			sims[j] = clamp(dots.AtVec(j))
		}
	}
	return sims
}

func (m *Matrix) checkRow(i int) {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("tfidf: row %d out of range [0,%d)", i, m.rows))
	}
}

// clamp absorbs floating point drift around the unit interval.
func clamp(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
