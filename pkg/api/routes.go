package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TFMV/MovieMatchPro/pkg/config"
	"github.com/TFMV/MovieMatchPro/pkg/metrics"
)

// Store is the catalog store the routes read from.
type Store interface {
	Pinger
	MovieQuerier
}

// SetupRoutes wires middleware and handlers onto router.
func SetupRoutes(router *gin.Engine, store Store, engine Recommender, cfg *config.Config, logger *zap.Logger) {
	router.Use(
		gin.Recovery(),
		RequestLogger(logger),
		metrics.Middleware(),
		CORS(cfg.Server.FrontendURL),
		ErrorHandler(),
	)

	router.GET("/health", HealthCheckHandler(store))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
	router.GET("/recommend/content-based", ContentRecommendHandler(engine, cfg.Recommend))
	router.GET("/movies/", ListMoviesHandler(store))
	router.POST("/movies/", MovieByTitleHandler(store))
	router.GET("/movies/search/", SearchMoviesHandler(store))
	router.GET("/movies/id/:imdb_id", MovieByIDHandler(store))
	router.GET("/movies/imdb/:imdb_id", IMDbLinkHandler())
	router.GET("/MoviesRecommendByActor", SharedRecommendHandler(store.RecommendByActor))
	router.GET("/MoviesRecommendByGenre", SharedRecommendHandler(store.RecommendByGenre))
}
