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
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TFMV/MovieMatchPro/internal/catalog"
)

// Dataset file names inside a data directory.
const (
	MoviesFile    = "movies.csv"
	ActorsFile    = "movie_actor.csv"
	DirectorsFile = "movie_director.csv"
	GenresFile    = "movie_genre.csv"
	KeywordsFile  = "movie_keyword.csv"
)

// csvTable maps one CSV file onto one table. The CSV header must contain
// every name in columns; other columns are ignored. The first keyColumns
// converted values identify a row: repeats are merged into one row.
type csvTable struct {
	file       string
	table      string
	columns    []string
	keyColumns int
	convert    func(values []string) ([]any, error)
	optional   bool
}

var datasetTables = []csvTable{
	{file: MoviesFile, table: "movies", columns: []string{"imdb_id", "title", "year", "runtime", "rating", "votes", "plot"}, keyColumns: 1, convert: convertMovie},
	{file: ActorsFile, table: "movie_actors", columns: []string{"imdb_id", "actor_name"}, keyColumns: 2, convert: convertRelation, optional: true},
	{file: DirectorsFile, table: "movie_directors", columns: []string{"imdb_id", "director_name"}, keyColumns: 2, convert: convertRelation, optional: true},
	{file: GenresFile, table: "movie_genres", columns: []string{"imdb_id", "genre"}, keyColumns: 2, convert: convertRelation, optional: true},
	{file: KeywordsFile, table: "movie_keywords", columns: []string{"imdb_id", "keyword"}, keyColumns: 2, convert: convertRelation, optional: true},
}

// CsvSource implements the pgx.CopyFromSource interface
type CsvSource struct {
	reader     *csv.Reader
	file       string
	index      []int
	convert    func([]string) ([]any, error)
	keyColumns int
	merged     [][]any
	loaded     bool
	values     []any
	line       int
	err        error
}

func newCsvSource(r io.Reader, t csvTable) (*CsvSource, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading %s header: %w", t.file, err)
	}

	positions := make(map[string]int, len(header))
	for i, name := range header {
		positions[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	index := make([]int, len(t.columns))
	for i, col := range t.columns {
		pos, ok := positions[col]
		if !ok {
			return nil, fmt.Errorf("%s: missing column %q", t.file, col)
		}
		index[i] = pos
	}

	return &CsvSource{
		reader:     reader,
		file:       t.file,
		index:      index,
		convert:    t.convert,
		keyColumns: t.keyColumns,
		line:       1,
	}, nil
}

// Next advances to the next row. Keyed sources yield each key once, at the
// position it first appeared, carrying the values of its last occurrence.
func (s *CsvSource) Next() bool {
	if s.keyColumns == 0 {
		return s.advance()
	}
	if !s.loaded {
		s.loaded = true
		s.merge()
	}
	if s.err != nil || len(s.merged) == 0 {
		return false
	}
	s.values, s.merged = s.merged[0], s.merged[1:]
	return true
}

func (s *CsvSource) merge() {
	positions := make(map[string]int)
	for s.advance() {
		key := rowKey(s.values[:s.keyColumns])
		if i, ok := positions[key]; ok {
			s.merged[i] = s.values
			continue
		}
		positions[key] = len(s.merged)
		s.merged = append(s.merged, s.values)
	}
}

func rowKey(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, "\x00")
}

// advance reads the next usable CSV record. Rows that convert to nil are skipped.
func (s *CsvSource) advance() bool {
	for {
		record, err := s.reader.Read()
		if errors.Is(err, io.EOF) {
			return false
		}
		s.line++
		if err != nil {
			s.err = fmt.Errorf("%s line %d: %w", s.file, s.line, err)
			return false
		}

		picked := make([]string, len(s.index))
		for i, pos := range s.index {
			picked[i] = strings.TrimSpace(record[pos])
		}

		values, err := s.convert(picked)
		if err != nil {
			s.err = fmt.Errorf("%s line %d: %w", s.file, s.line, err)
			return false
		}
		if values == nil {
			continue
		}
		s.values = values
		return true
	}
}

func (s *CsvSource) Values() ([]interface{}, error) {
	return s.values, nil
}

func (s *CsvSource) Err() error {
	return s.err
}

// convertMovie types a movies.csv row. Empty optional fields become NULL.
func convertMovie(v []string) ([]any, error) {
	if v[0] == "" {
		return nil, nil
	}

	var rating, votes any
	if v[4] != "" {
		f, err := strconv.ParseFloat(v[4], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid rating %q: %w", v[4], err)
		}
		rating = f
	}
	if v[5] != "" {
		n, err := strconv.ParseInt(strings.ReplaceAll(v[5], ",", ""), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid votes %q: %w", v[5], err)
		}
		votes = n
	}

	return []any{v[0], v[1], nullable(v[2]), nullable(v[3]), rating, votes, v[6]}, nil
}

// convertRelation keeps (imdb_id, name) rows where both parts are present.
func convertRelation(v []string) ([]any, error) {
	if v[0] == "" || v[1] == "" {
		return nil, nil
	}
	return []any{v[0], v[1]}, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func openTable(dir string, t csvTable) (*os.File, error) {
	file, err := os.Open(filepath.Join(dir, t.file))
	if err != nil {
		if t.optional && errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	return file, nil
}

// LoadDataset replaces the catalog tables with the CSV files in dir, in one
// transaction. It returns the number of rows copied per table.
func LoadDataset(ctx context.Context, pool *pgxpool.Pool, dir string) (map[string]int64, error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := EnsureSchema(ctx, tx); err != nil {
		return nil, err
	}
	truncate := "TRUNCATE movies, movie_actors, movie_directors, movie_genres, movie_keywords RESTART IDENTITY"
	if _, err := tx.Exec(ctx, truncate); err != nil {
		return nil, fmt.Errorf("error truncating catalog tables: %w", err)
	}

	counts := make(map[string]int64, len(datasetTables))
	for _, t := range datasetTables {
		n, err := copyTable(ctx, tx, dir, t)
		if err != nil {
			return nil, err
		}
		counts[t.table] = n
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}
	return counts, nil
}

func copyTable(ctx context.Context, tx pgx.Tx, dir string, t csvTable) (int64, error) {
	file, err := openTable(dir, t)
	if err != nil || file == nil {
		return 0, err
	}
	defer file.Close()

	src, err := newCsvSource(file, t)
	if err != nil {
		return 0, err
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{t.table}, t.columns, src)
	if err != nil {
		return 0, fmt.Errorf("error copying %s into %s: %w", t.file, t.table, err)
	}
	return n, nil
}

// ReadDataset builds catalog records straight from the CSV files in dir,
// without a database. Records keep the order of movies.csv and merge repeated
// ids the same way LoadDataset does.
func ReadDataset(dir string) ([]catalog.Record, error) {
	var (
		records []catalog.Record
		byID    = make(map[string]int)
	)

	for _, t := range datasetTables {
		file, err := openTable(dir, t)
		if err != nil {
			return nil, err
		}
		if file == nil {
			continue
		}

		err = func() error {
			defer file.Close()
			src, err := newCsvSource(file, t)
			if err != nil {
				return err
			}
			for src.Next() {
				v := src.values
				id := v[0].(string)
				if t.file == MoviesFile {
					byID[id] = len(records)
					records = append(records, catalog.Record{ID: id, Title: v[1].(string), Description: v[6].(string)})
					continue
				}
				i, ok := byID[id]
				if !ok {
					continue
				}
				addRelation(&records[i], t.table, v[1].(string))
			}
			return src.Err()
		}()
		if err != nil {
			return nil, err
		}
	}

	return records, nil
}

func addRelation(rec *catalog.Record, table, name string) {
	switch table {
	case "movie_actors":
		rec.Cast = append(rec.Cast, name)
	case "movie_directors":
		rec.Crew = append(rec.Crew, name)
	case "movie_genres":
		rec.Genres = append(rec.Genres, name)
	case "movie_keywords":
		rec.Keywords = append(rec.Keywords, name)
	}
}
