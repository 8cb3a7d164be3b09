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
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/TFMV/MovieMatchPro/internal/catalog"
	"github.com/TFMV/MovieMatchPro/pkg/metrics"
)

// Recommendation is the outcome of one ranking request. Matched is false when
// the catalog was empty or the title did not resolve; the boundary layer maps
// that to "not found", while a matched query with no results is a valid answer.
type Recommendation struct {
	Query   string         `json:"movie"`
	Matched bool           `json:"-"`
	Results []RankedResult `json:"recommendations"`
}

// Engine pulls a fresh catalog snapshot on every call and ranks it.
// It holds no mutable state, so one Engine serves concurrent requests.
type Engine struct {
	source     catalog.Source
	normalizer catalog.Normalizer
	logger     *zap.Logger
}

// NewEngine creates an Engine. A nil logger discards output.
func NewEngine(source catalog.Source, normalizer catalog.Normalizer, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{source: source, normalizer: normalizer, logger: logger}
}

// Recommend ranks the catalog against queryTitle and returns at most topN results.
// Only a failed catalog fetch or a cancelled context produce an error.
func (e *Engine) Recommend(ctx context.Context, queryTitle string, topN int) (Recommendation, error) {
	start := time.Now()
	defer func() { metrics.RecommendDuration.Observe(time.Since(start).Seconds()) }()
	rec := Recommendation{Query: queryTitle, Results: []RankedResult{}}

	records, err := e.source.FetchCatalog(ctx)
	if err != nil {
		metrics.RecommendTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return rec, fmt.Errorf("failed to fetch catalog: %w", err)
	}
	// A snapshot that arrives after the deadline is not ranked.
	if err := ctx.Err(); err != nil {
		metrics.RecommendTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return rec, err
	}

	snapshot := catalog.New(records, e.normalizer)
	metrics.CatalogEntries.Set(float64(snapshot.Len()))

	candidates, ok := Score(snapshot, queryTitle)
	if !ok {
		metrics.RecommendTotal.WithLabelValues(metrics.OutcomeNotFound).Inc()
		e.logger.Info("title not found in catalog",
			zap.String("title", queryTitle),
			zap.Int("catalog_size", snapshot.Len()),
		)
		return rec, nil
	}

	rec.Matched = true
	rec.Results = Top(candidates, topN)

	elapsed := time.Since(start)
	metrics.RecommendTotal.WithLabelValues(metrics.OutcomeMatched).Inc()
	e.logger.Debug("ranked catalog",
		zap.String("title", queryTitle),
		zap.Int("catalog_size", snapshot.Len()),
		zap.Int("candidates", len(candidates)),
		zap.Int("returned", len(rec.Results)),
		zap.Duration("elapsed", elapsed),
	)

	return rec, nil
}
