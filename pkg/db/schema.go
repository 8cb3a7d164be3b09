package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// seq keeps ingestion order so the catalog snapshot is stable between reads.
const schema = `
CREATE TABLE IF NOT EXISTS movies (
	seq     BIGSERIAL,
	imdb_id TEXT PRIMARY KEY,
	title   TEXT NOT NULL,
	year    TEXT,
	runtime TEXT,
	rating  DOUBLE PRECISION,
	votes   BIGINT,
	plot    TEXT
);
CREATE TABLE IF NOT EXISTS movie_actors (
	imdb_id    TEXT NOT NULL,
	actor_name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS movie_directors (
	imdb_id       TEXT NOT NULL,
	director_name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS movie_genres (
	imdb_id TEXT NOT NULL,
	genre   TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS movie_keywords (
	imdb_id TEXT NOT NULL,
	keyword TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS movie_actors_imdb_id_idx ON movie_actors (imdb_id);
CREATE INDEX IF NOT EXISTS movie_directors_imdb_id_idx ON movie_directors (imdb_id);
CREATE INDEX IF NOT EXISTS movie_genres_imdb_id_idx ON movie_genres (imdb_id);
CREATE INDEX IF NOT EXISTS movie_keywords_imdb_id_idx ON movie_keywords (imdb_id);
`

// EnsureSchema creates the catalog tables when they do not exist.
func EnsureSchema(ctx context.Context, tx pgx.Tx) error {
	if _, err := tx.Exec(ctx, schema); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}
	return nil
}
