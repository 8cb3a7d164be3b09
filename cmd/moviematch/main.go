package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/TFMV/MovieMatchPro/internal/catalog"
	"github.com/TFMV/MovieMatchPro/internal/matcher"
	"github.com/TFMV/MovieMatchPro/internal/standardizer"
	"github.com/TFMV/MovieMatchPro/pkg/config"
	"github.com/TFMV/MovieMatchPro/pkg/db"
	"github.com/TFMV/MovieMatchPro/pkg/stopwords"
	"github.com/TFMV/MovieMatchPro/pkg/utils"
)

func main() {
	title := flag.String("title", "", "title of the movie to find similar movies for")
	topN := flag.Int("top", 5, "number of recommendations")
	dataDir := flag.String("data", "", "read the catalog from CSV files in this directory instead of Postgres")
	stopWordsPath := flag.String("stopwords", "", "stop-word file; defaults to the built-in English list")
	flag.Parse()

	if *title == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := utils.NewLogger("local", "warn")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	var source catalog.Source
	if *dataDir != "" {
		records, err := db.ReadDataset(*dataDir)
		if err != nil {
			log.Fatalf("Failed to read dataset: %v", err)
		}
		source = catalog.NewMemorySource(records)
	} else {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		if *stopWordsPath == "" {
			*stopWordsPath = cfg.Text.StopWordsPath
		}
		pool, err := db.NewConnection(ctx, cfg.DBCreds)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer pool.Close()
		source = db.NewStore(pool)
	}

	words, err := stopwords.FromPath(*stopWordsPath)
	if err != nil {
		log.Fatalf("Failed to load stop words: %v", err)
	}

	engine := matcher.NewEngine(source, standardizer.NewNormalizer(words), logger)
	rec, err := engine.Recommend(ctx, *title, *topN)
	if err != nil {
		log.Fatalf("Failed to compute recommendations: %v", err)
	}
	if !rec.Matched {
		fmt.Fprintf(os.Stderr, "movie %q not found\n", *title)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		log.Fatalf("Failed to encode recommendations: %v", err)
	}
}
