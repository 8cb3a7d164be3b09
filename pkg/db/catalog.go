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
	"net/url"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TFMV/MovieMatchPro/internal/catalog"
)

// ErrMovieNotFound is returned by GetMovie when no movie has the given id.
var ErrMovieNotFound = errors.New("movie not found")

// fetchCatalogQuery returns every movie with its four name lists in one round trip.
const fetchCatalogQuery = `
SELECT m.imdb_id,
       m.title,
       coalesce(m.plot, ''),
       coalesce(g.names, '{}'::text[]),
       coalesce(a.names, '{}'::text[]),
       coalesce(d.names, '{}'::text[]),
       coalesce(k.names, '{}'::text[])
FROM movies m
LEFT JOIN (SELECT imdb_id, array_agg(genre) AS names FROM movie_genres GROUP BY imdb_id) g
       ON g.imdb_id = m.imdb_id
LEFT JOIN (SELECT imdb_id, array_agg(actor_name) AS names FROM movie_actors GROUP BY imdb_id) a
       ON a.imdb_id = m.imdb_id
LEFT JOIN (SELECT imdb_id, array_agg(director_name) AS names FROM movie_directors GROUP BY imdb_id) d
       ON d.imdb_id = m.imdb_id
LEFT JOIN (SELECT imdb_id, array_agg(keyword) AS names FROM movie_keywords GROUP BY imdb_id) k
       ON k.imdb_id = m.imdb_id
ORDER BY m.seq
`

// movieDetailSelect yields the columns of movieRow for every movie m.
const movieDetailSelect = `
SELECT m.imdb_id, m.title, m.year, m.runtime, m.rating, m.votes, m.plot,
       coalesce((SELECT array_agg(DISTINCT actor_name) FROM movie_actors WHERE imdb_id = m.imdb_id), '{}'::text[]),
       coalesce((SELECT array_agg(DISTINCT director_name) FROM movie_directors WHERE imdb_id = m.imdb_id), '{}'::text[]),
       coalesce((SELECT array_agg(DISTINCT genre) FROM movie_genres WHERE imdb_id = m.imdb_id), '{}'::text[]),
       coalesce((SELECT array_agg(DISTINCT keyword) FROM movie_keywords WHERE imdb_id = m.imdb_id), '{}'::text[])
FROM movies m
`

const getMovieQuery = movieDetailSelect + `WHERE m.imdb_id = $1`

// Movie is the detail view of one catalog entry.
type Movie struct {
	IMDbID    string   `json:"imdb_id"`
	Title     string   `json:"title"`
	Year      *string  `json:"year"`
	Runtime   *string  `json:"runtime"`
	Rating    *float64 `json:"rating"`
	Votes     *int64   `json:"votes"`
	Plot      *string  `json:"plot"`
	IMDbURL   string   `json:"imdb_url,omitempty"`
	Actors    []string `json:"actors"`
	Directors []string `json:"directors"`
	Genres    []string `json:"genres"`
	Keywords  []string `json:"keywords"`
}

// Store reads the movie catalog from Postgres.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a Store over an open pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// FetchCatalog returns every movie in ingestion order. Cast is the actor list,
// crew the director list.
func (s *Store) FetchCatalog(ctx context.Context) ([]catalog.Record, error) {
	rows, err := s.pool.Query(ctx, fetchCatalogQuery)
	if err != nil {
		return nil, fmt.Errorf("error querying catalog: %w", err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.Record, error) {
		var rec catalog.Record
		err := row.Scan(&rec.ID, &rec.Title, &rec.Description, &rec.Genres, &rec.Cast, &rec.Crew, &rec.Keywords)
		return rec, err
	})
	if err != nil {
		return nil, fmt.Errorf("error reading catalog rows: %w", err)
	}

	return records, nil
}

// movieRow mirrors getMovieQuery's columns.
type movieRow struct {
	IMDbID    string
	Title     string
	Year      pgtype.Text
	Runtime   pgtype.Text
	Rating    pgtype.Float8
	Votes     pgtype.Int8
	Plot      pgtype.Text
	Actors    []string
	Directors []string
	Genres    []string
	Keywords  []string
}

// GetMovie returns the details of one movie.
func (s *Store) GetMovie(ctx context.Context, imdbID string) (*Movie, error) {
	movie, err := scanMovie(s.pool.QueryRow(ctx, getMovieQuery, imdbID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMovieNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying movie %s: %w", imdbID, err)
	}
	return movie, nil
}

func scanMovie(row pgx.Row) (*Movie, error) {
	var r movieRow
	err := row.Scan(
		&r.IMDbID, &r.Title, &r.Year, &r.Runtime, &r.Rating, &r.Votes, &r.Plot,
		&r.Actors, &r.Directors, &r.Genres, &r.Keywords,
	)
	if err != nil {
		return nil, err
	}
	return r.toMovie(), nil
}

func (r movieRow) toMovie() *Movie {
	return &Movie{
		IMDbID:    r.IMDbID,
		Title:     r.Title,
		Year:      textPtr(r.Year),
		Runtime:   textPtr(r.Runtime),
		Rating:    floatPtr(r.Rating),
		Votes:     intPtr(r.Votes),
		Plot:      textPtr(r.Plot),
		IMDbURL:   IMDbURL(r.IMDbID),
		Actors:    nonNil(r.Actors),
		Directors: nonNil(r.Directors),
		Genres:    nonNil(r.Genres),
		Keywords:  nonNil(r.Keywords),
	}
}

// IMDbURL returns the public IMDb page for an id, or "" for an empty id.
func IMDbURL(imdbID string) string {
	if imdbID == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + url.PathEscape(imdbID) + "/"
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
