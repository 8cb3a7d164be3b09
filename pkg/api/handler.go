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

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/TFMV/MovieMatchPro/internal/matcher"
	"github.com/TFMV/MovieMatchPro/pkg/config"
	"github.com/TFMV/MovieMatchPro/pkg/db"
	"github.com/TFMV/MovieMatchPro/pkg/utils"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Recommender ranks the catalog against a query title.
type Recommender interface {
	Recommend(ctx context.Context, title string, topN int) (matcher.Recommendation, error)
}

// MovieGetter looks up a single movie by IMDb id.
type MovieGetter interface {
	GetMovie(ctx context.Context, imdbID string) (*db.Movie, error)
}

// MovieQuerier answers the lookup and graph-style queries over the catalog.
type MovieQuerier interface {
	MovieGetter
	ListMovies(ctx context.Context, limit int) ([]db.MovieSummary, error)
	FindByTitle(ctx context.Context, title string) (*db.Movie, error)
	SearchByKeyword(ctx context.Context, keyword string, limit int) ([]db.Movie, error)
	RecommendByActor(ctx context.Context, title string, limit int) ([]db.SharedRecommendation, error)
	RecommendByGenre(ctx context.Context, title string, limit int) ([]db.SharedRecommendation, error)
}

// Result limits for the catalog queries.
const (
	listLimit   = 10
	searchLimit = 20
	sharedLimit = 20
)

// HealthCheckHandler handles health check requests
func HealthCheckHandler(store Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Ping(c.Request.Context()); err != nil {
			utils.SendError(c, http.StatusInternalServerError, fmt.Errorf("database unavailable: %w", err))
			return
		}
		zuluTime := time.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"zuluTime": zuluTime,
		})
	}
}

// ContentRecommendHandler serves "more like this" rankings for one title.
func ContentRecommendHandler(engine Recommender, cfg config.RecommendConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.Query("movie_title")
		if title == "" {
			utils.SendError(c, http.StatusBadRequest, errors.New("movie_title is required"))
			return
		}

		topN, err := parseTopN(c.Query("top_n"), cfg)
		if err != nil {
			utils.SendError(c, http.StatusBadRequest, err)
			return
		}

		ctx := c.Request.Context()
		if cfg.TimeoutSeconds > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
			defer cancel()
		}

		rec, err := engine.Recommend(ctx, title, topN)
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			utils.SendError(c, http.StatusGatewayTimeout, errors.New("recommendation timed out"))
			return
		case err != nil:
			c.Error(err)
			utils.SendError(c, http.StatusInternalServerError, errors.New("failed to compute recommendations"))
			return
		case !rec.Matched:
			utils.SendError(c, http.StatusNotFound, fmt.Errorf("movie %q not found", title))
			return
		}

		c.JSON(http.StatusOK, rec)
	}
}

// parseTopN applies the configured default and cap. Negative values pass
// through and yield an empty list.
func parseTopN(raw string, cfg config.RecommendConfig) (int, error) {
	if raw == "" {
		return cfg.DefaultTopN, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("top_n must be an integer, got %q", raw)
	}
	if cfg.MaxTopN > 0 && n > cfg.MaxTopN {
		n = cfg.MaxTopN
	}
	return n, nil
}

// MovieByIDHandler returns the details of one movie.
func MovieByIDHandler(store MovieGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("imdb_id")
		movie, err := store.GetMovie(c.Request.Context(), id)
		if errors.Is(err, db.ErrMovieNotFound) {
			utils.SendError(c, http.StatusNotFound, fmt.Errorf("movie %s not found", id))
			return
		}
		if err != nil {
			c.Error(err)
			utils.SendError(c, http.StatusInternalServerError, errors.New("failed to load movie"))
			return
		}
		c.JSON(http.StatusOK, movie)
	}
}

// ListMoviesHandler returns the first movies by title.
func ListMoviesHandler(store MovieQuerier) gin.HandlerFunc {
	return func(c *gin.Context) {
		movies, err := store.ListMovies(c.Request.Context(), listLimit)
		if err != nil {
			c.Error(err)
			utils.SendError(c, http.StatusInternalServerError, errors.New("failed to list movies"))
			return
		}
		c.JSON(http.StatusOK, movies)
	}
}

// MovieByTitleHandler looks up a movie by the exact title in the movie_name form field.
func MovieByTitleHandler(store MovieQuerier) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("movie_name")
		if title == "" {
			utils.SendError(c, http.StatusBadRequest, errors.New("movie_name is required"))
			return
		}

		movie, err := store.FindByTitle(c.Request.Context(), title)
		if errors.Is(err, db.ErrMovieNotFound) {
			utils.SendError(c, http.StatusNotFound, fmt.Errorf("movie %q not found", title))
			return
		}
		if err != nil {
			c.Error(err)
			utils.SendError(c, http.StatusInternalServerError, errors.New("failed to load movie"))
			return
		}
		c.JSON(http.StatusOK, movie)
	}
}

// IMDbLinkHandler returns the IMDb page for an id without touching the store.
func IMDbLinkHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("imdb_id")
		c.JSON(http.StatusOK, gin.H{
			"imdb_id":  id,
			"imdb_url": db.IMDbURL(id),
		})
	}
}

// SearchMoviesHandler finds movies whose keywords contain the keyword query parameter.
func SearchMoviesHandler(store MovieQuerier) gin.HandlerFunc {
	return func(c *gin.Context) {
		keyword := c.Query("keyword")
		if keyword == "" {
			utils.SendError(c, http.StatusBadRequest, errors.New("keyword is required"))
			return
		}

		movies, err := store.SearchByKeyword(c.Request.Context(), keyword, searchLimit)
		if err != nil {
			c.Error(err)
			utils.SendError(c, http.StatusInternalServerError, errors.New("failed to search movies"))
			return
		}
		if len(movies) == 0 {
			utils.SendError(c, http.StatusNotFound, fmt.Errorf("no movies found for keyword %q", keyword))
			return
		}
		c.JSON(http.StatusOK, movies)
	}
}

type sharedQuery func(ctx context.Context, title string, limit int) ([]db.SharedRecommendation, error)

// SharedRecommendHandler ranks movies by shared actors or genres with the
// movie_name query parameter.
func SharedRecommendHandler(query sharedQuery) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.Query("movie_name")
		if title == "" {
			utils.SendError(c, http.StatusBadRequest, errors.New("movie_name is required"))
			return
		}

		recs, err := query(c.Request.Context(), title, sharedLimit)
		if err != nil {
			c.Error(err)
			utils.SendError(c, http.StatusInternalServerError, errors.New("failed to compute recommendations"))
			return
		}
		if len(recs) == 0 {
			utils.SendError(c, http.StatusNotFound, fmt.Errorf("no recommendations found for %q", title))
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"movie":           title,
			"recommendations": recs,
		})
	}
}
