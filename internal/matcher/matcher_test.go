package matcher

import (
	"math"
	"reflect"
	"testing"

	"github.com/TFMV/MovieMatchPro/internal/catalog"
	"github.com/TFMV/MovieMatchPro/internal/standardizer"
	"github.com/TFMV/MovieMatchPro/pkg/stopwords"
)

var normalizer = standardizer.NewNormalizer(stopwords.English())

func snapshot(records ...catalog.Record) catalog.Catalog {
	return catalog.New(records, normalizer)
}

func robotCatalog() catalog.Catalog {
	return snapshot(
		catalog.Record{ID: "a", Title: "A", Description: "a robot falls in love", Genres: []string{"scifi"}},
		catalog.Record{ID: "b", Title: "B", Description: "a robot falls in love", Genres: []string{"scifi"}},
		catalog.Record{ID: "c", Title: "C", Description: "a baker opens a shop", Genres: []string{"drama"}},
	)
}

func titles(results []RankedResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Title
	}
	return out
}

func TestRankSimilarPlotWins(t *testing.T) {
	results := Rank(robotCatalog(), "A", 2)

	if got := titles(results); !reflect.DeepEqual(got, []string{"B", "C"}) {
		t.Fatalf("Rank() titles = %v, want [B C]", got)
	}
	if results[0].Score <= results[1].Score {
		t.Errorf("B score %v should be strictly greater than C score %v", results[0].Score, results[1].Score)
	}
	if math.Abs(results[0].Score-0.6) > 1e-9 {
		t.Errorf("B score = %v, want 0.6 (text 1.0, genre 1.0)", results[0].Score)
	}
	if results[1].Score != 0 {
		t.Errorf("C score = %v, want 0", results[1].Score)
	}
}

func TestRankEmptyResults(t *testing.T) {
	single := snapshot(catalog.Record{ID: "x", Title: "Only One", Description: "a lonely film"})

	tests := []struct {
		name  string
		snap  catalog.Catalog
		title string
		topN  int
	}{
		{"empty catalog", snapshot(), "A", 5},
		{"title not found", robotCatalog(), "Nonexistent Title", 5},
		{"partial title", robotCatalog(), "Robot", 5},
		{"single entry", single, "Only One", 5},
		{"zero topN", robotCatalog(), "A", 0},
		{"negative topN", robotCatalog(), "A", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.snap, tt.title, tt.topN)
			if got == nil {
				t.Fatal("Rank() returned nil, want an empty slice")
			}
			if len(got) != 0 {
				t.Errorf("Rank() = %v, want empty", got)
			}
		})
	}
}

func TestRankTruncation(t *testing.T) {
	snap := robotCatalog()

	tests := []struct {
		topN    int
		wantLen int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{100, 2},
	}

	for _, tt := range tests {
		got := Rank(snap, "A", tt.topN)
		if len(got) != tt.wantLen {
			t.Errorf("Rank(topN=%d) len = %d, want %d", tt.topN, len(got), tt.wantLen)
		}
	}
}

func TestRankCaseInsensitiveTitle(t *testing.T) {
	got := Rank(robotCatalog(), "a", 5)
	if want := []string{"B", "C"}; !reflect.DeepEqual(titles(got), want) {
		t.Errorf("Rank(\"a\") titles = %v, want %v", titles(got), want)
	}
}

func TestRankExcludesQueryByIdentity(t *testing.T) {
	snap := snapshot(
		catalog.Record{ID: "1", Title: "Twin", Description: "space pirates", Genres: []string{"Action"}},
		catalog.Record{ID: "2", Title: "twin", Description: "space pirates", Genres: []string{"Action"}},
		catalog.Record{ID: "3", Title: "Other", Description: "garden party"},
	)

	results := Rank(snap, "TWIN", 5)
	if len(results) != 2 {
		t.Fatalf("Rank() len = %d, want 2", len(results))
	}
	if results[0].Title != "twin" {
		t.Errorf("duplicate title entry should still be recommended, got %v", titles(results))
	}

	candidates, ok := Score(snap, "Twin")
	if !ok {
		t.Fatal("Score() did not resolve the title")
	}
	for _, c := range candidates {
		if c.Entry.ID == "1" {
			t.Error("resolved query entry must not be a candidate")
		}
	}
}

func TestRankStableTies(t *testing.T) {
	snap := snapshot(
		catalog.Record{ID: "q", Title: "Query", Description: "volcano eruption", Genres: []string{"Disaster"}},
		catalog.Record{ID: "x", Title: "X", Description: "quiet library"},
		catalog.Record{ID: "y", Title: "Y", Description: "", Genres: []string{"Comedy"}},
		catalog.Record{ID: "z", Title: "Z", Description: "chess match"},
		catalog.Record{ID: "w", Title: "W", Description: "volcano", Genres: []string{"Disaster"}},
	)

	got := titles(Rank(snap, "Query", 10))
	want := []string{"W", "X", "Y", "Z"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() titles = %v, want %v", got, want)
	}
}

func TestRankSortedAndBounded(t *testing.T) {
	snap := snapshot(
		catalog.Record{ID: "1", Title: "Heat", Description: "A detective hunts a crew of bank robbers in Los Angeles.",
			Genres: []string{"Crime", "Thriller"}, Cast: []string{"Al Pacino", "Robert De Niro"}, Crew: []string{"Michael Mann"},
			Keywords: []string{"heist", "police"}},
		catalog.Record{ID: "2", Title: "Collateral", Description: "A cab driver is held hostage by a hitman in Los Angeles.",
			Genres: []string{"Crime", "Thriller"}, Cast: []string{"Tom Cruise"}, Crew: []string{"Michael Mann"},
			Keywords: []string{"hitman"}},
		catalog.Record{ID: "3", Title: "The Irishman", Description: "A hitman recalls his years with the mob.",
			Genres: []string{"Crime", "Drama"}, Cast: []string{"Al Pacino", "Robert De Niro"}, Crew: []string{"Martin Scorsese"},
			Keywords: []string{"mob"}},
		catalog.Record{ID: "4", Title: "Paddington", Description: "A bear travels to London.",
			Genres: []string{"Family"}, Cast: []string{"Ben Whishaw"}},
		catalog.Record{ID: "5", Title: "Blank", Description: ""},
	)

	for _, topN := range []int{1, 2, 3, 4, 10} {
		results := Rank(snap, "Heat", topN)
		limit := topN
		if limit > snap.Len()-1 {
			limit = snap.Len() - 1
		}
		if len(results) != limit {
			t.Errorf("Rank(topN=%d) len = %d, want %d", topN, len(results), limit)
		}
		for i, r := range results {
			if r.Title == "Heat" {
				t.Errorf("Rank(topN=%d) includes the query entry", topN)
			}
			if r.Score < 0 || r.Score > 1 {
				t.Errorf("score %v outside [0,1]", r.Score)
			}
			if i > 0 && results[i-1].Score < r.Score {
				t.Errorf("Rank(topN=%d) not sorted at %d: %v", topN, i, titles(results))
			}
		}
	}

	results := Rank(snap, "Heat", 10)
	if last := results[len(results)-1]; last.Title != "Blank" || last.Score != 0 {
		t.Errorf("entry with no data should score 0 and rank last, got %+v", last)
	}
}

func TestRankIsDeterministic(t *testing.T) {
	snap := robotCatalog()
	first := Rank(snap, "C", 5)
	for i := 0; i < 5; i++ {
		if got := Rank(snap, "C", 5); !reflect.DeepEqual(got, first) {
			t.Fatalf("Rank() run %d = %v, want %v", i, got, first)
		}
	}
}

func TestEmptyEntryScoresZero(t *testing.T) {
	snap := snapshot(
		catalog.Record{ID: "e", Title: "Empty"},
		catalog.Record{ID: "f", Title: "Full", Description: "a robot falls in love",
			Genres: []string{"scifi"}, Cast: []string{"Someone"}, Crew: []string{"Director"}, Keywords: []string{"robot"}},
		catalog.Record{ID: "g", Title: "Also Empty"},
	)

	for _, query := range []string{"Empty", "Full"} {
		candidates, ok := Score(snap, query)
		if !ok {
			t.Fatalf("Score(%q) did not resolve", query)
		}
		for _, c := range candidates {
			if query == "Full" && c.Entry.ID == "f" {
				continue
			}
			if c.Score != 0 {
				t.Errorf("Score(%q): candidate %s = %v, want 0", query, c.Entry.ID, c.Score)
			}
			if c.Scores != (SimilarityVector{}) {
				t.Errorf("Score(%q): candidate %s components = %+v, want all zero", query, c.Entry.ID, c.Scores)
			}
		}
	}
}

func TestScoreComponents(t *testing.T) {
	snap := snapshot(
		catalog.Record{ID: "1", Title: "Q", Description: "dragon castle",
			Genres: []string{"Fantasy", "Adventure"}, Cast: []string{"A", "B"}, Crew: []string{"D"}, Keywords: []string{"dragon"}},
		catalog.Record{ID: "2", Title: "R", Description: "dragon castle",
			Genres: []string{"Fantasy"}, Cast: []string{"B", "C"}, Crew: []string{"D"}, Keywords: []string{"knight"}},
	)

	candidates, ok := Score(snap, "Q")
	if !ok || len(candidates) != 1 {
		t.Fatalf("Score() = %v, %v", candidates, ok)
	}
	got := candidates[0].Scores
	if math.Abs(got.Text-1) > 1e-9 {
		t.Errorf("Text = %v, want 1", got.Text)
	}
	if got.Genre != 0.5 || got.Cast != 1.0/3.0 || got.Crew != 1 || got.Keyword != 0 {
		t.Errorf("Scores = %+v", got)
	}
	want := Fuse(got.Text, 0.5, 1.0/3.0, 1, 0)
	if candidates[0].Score != want {
		t.Errorf("Score = %v, want %v", candidates[0].Score, want)
	}
}
