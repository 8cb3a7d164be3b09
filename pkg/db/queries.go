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

package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const listMoviesQuery = `
SELECT imdb_id, title, year, runtime, rating, votes, plot
FROM movies
ORDER BY title, seq
LIMIT $1
`

const findByTitleQuery = movieDetailSelect + `WHERE m.title = $1 ORDER BY m.seq LIMIT 1`

// strpos avoids LIKE so '%' and '_' in the keyword match literally.
const searchByKeywordQuery = movieDetailSelect + `
WHERE EXISTS (
	SELECT 1 FROM movie_keywords k
	WHERE k.imdb_id = m.imdb_id AND strpos(lower(k.keyword), lower($1)) > 0
)
ORDER BY m.seq
LIMIT $2
`

// Movies sharing at least one actor with any movie titled $1, ranked by the
// number of shared actors and then by rating.
const sharedActorsQuery = `
SELECT r.title, r.rating, r.year, count(DISTINCT qa.actor_name) AS shared
FROM movies q
JOIN movie_actors qa ON qa.imdb_id = q.imdb_id
JOIN movie_actors ra ON ra.actor_name = qa.actor_name AND ra.imdb_id <> q.imdb_id
JOIN movies r ON r.imdb_id = ra.imdb_id
WHERE q.title = $1
GROUP BY r.imdb_id, r.title, r.rating, r.year, r.seq
ORDER BY shared DESC, r.rating DESC NULLS LAST, r.seq
LIMIT $2
`

const sharedGenresQuery = `
SELECT r.title, r.rating, r.year, count(DISTINCT qg.genre) AS shared
FROM movies q
JOIN movie_genres qg ON qg.imdb_id = q.imdb_id
JOIN movie_genres rg ON rg.genre = qg.genre AND rg.imdb_id <> q.imdb_id
JOIN movies r ON r.imdb_id = rg.imdb_id
WHERE q.title = $1
GROUP BY r.imdb_id, r.title, r.rating, r.year, r.seq
ORDER BY shared DESC, r.rating DESC NULLS LAST, r.seq
LIMIT $2
`

// MovieSummary is a movie without its name lists.
type MovieSummary struct {
	IMDbID  string   `json:"imdb_id"`
	Title   string   `json:"title"`
	Year    *string  `json:"year"`
	Runtime *string  `json:"runtime"`
	Rating  *float64 `json:"rating"`
	Votes   *int64   `json:"votes"`
	Plot    *string  `json:"plot"`
	IMDbURL string   `json:"imdb_url,omitempty"`
}

// SharedRecommendation is a movie ranked by how many actors or genres it
// shares with the query movie.
type SharedRecommendation struct {
	Title  string   `json:"title"`
	Rating *float64 `json:"rating"`
	Year   *string  `json:"year"`
	Shared int64    `json:"shared"`
}

// ListMovies returns up to limit movies ordered by title.
func (s *Store) ListMovies(ctx context.Context, limit int) ([]MovieSummary, error) {
	rows, err := s.pool.Query(ctx, listMoviesQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing movies: %w", err)
	}

	movies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (MovieSummary, error) {
		var r movieRow
		if err := row.Scan(&r.IMDbID, &r.Title, &r.Year, &r.Runtime, &r.Rating, &r.Votes, &r.Plot); err != nil {
			return MovieSummary{}, err
		}
		return r.toSummary(), nil
	})
	if err != nil {
		return nil, fmt.Errorf("error reading movie rows: %w", err)
	}
	return movies, nil
}

// FindByTitle returns the first movie, in ingestion order, whose title is
// exactly title.
func (s *Store) FindByTitle(ctx context.Context, title string) (*Movie, error) {
	movie, err := scanMovie(s.pool.QueryRow(ctx, findByTitleQuery, title))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying movie %q: %w", title, err)
	}
	return movie, nil
}

// SearchByKeyword returns up to limit movies with a keyword containing
// keyword, case-insensitively.
func (s *Store) SearchByKeyword(ctx context.Context, keyword string, limit int) ([]Movie, error) {
	rows, err := s.pool.Query(ctx, searchByKeywordQuery, keyword, limit)
	if err != nil {
		return nil, fmt.Errorf("error searching movies: %w", err)
	}

	movies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Movie, error) {
		m, err := scanMovie(row)
		if err != nil {
			return Movie{}, err
		}
		return *m, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error reading movie rows: %w", err)
	}
	return movies, nil
}

// RecommendByActor ranks movies by actors shared with the movie titled title.
func (s *Store) RecommendByActor(ctx context.Context, title string, limit int) ([]SharedRecommendation, error) {
	return s.shared(ctx, sharedActorsQuery, title, limit)
}

// RecommendByGenre ranks movies by genres shared with the movie titled title.
func (s *Store) RecommendByGenre(ctx context.Context, title string, limit int) ([]SharedRecommendation, error) {
	return s.shared(ctx, sharedGenresQuery, title, limit)
}

func (s *Store) shared(ctx context.Context, query, title string, limit int) ([]SharedRecommendation, error) {
	rows, err := s.pool.Query(ctx, query, title, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying shared recommendations: %w", err)
	}

	recs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (SharedRecommendation, error) {
		var (
			rec    SharedRecommendation
			rating pgtype.Float8
			year   pgtype.Text
		)
		if err := row.Scan(&rec.Title, &rating, &year, &rec.Shared); err != nil {
			return rec, err
		}
		rec.Rating = floatPtr(rating)
		rec.Year = textPtr(year)
		return rec, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error reading recommendation rows: %w", err)
	}
	return recs, nil
}

func (r movieRow) toSummary() MovieSummary {
	return MovieSummary{
		IMDbID:  r.IMDbID,
		Title:   r.Title,
		Year:    textPtr(r.Year),
		Runtime: textPtr(r.Runtime),
		Rating:  floatPtr(r.Rating),
		Votes:   intPtr(r.Votes),
		Plot:    textPtr(r.Plot),
		IMDbURL: IMDbURL(r.IMDbID),
	}
}

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	return &t.String
}

func floatPtr(f pgtype.Float8) *float64 {
	if !f.Valid {
		return nil
	}
	return &f.Float64
}

func intPtr(i pgtype.Int8) *int64 {
	if !i.Valid {
		return nil
	}
	return &i.Int64
}
