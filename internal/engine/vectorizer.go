// Movie Recommender - Content and Popularity Based Movie Recommendations
// Copyright 2026 Jay K. (JayKCDev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/JayKCDev/movie-recommendation-system

package engine

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/JayKCDev/movie-recommendation-system/internal/models"
)

// FeatureVector is a sparse, unit-length TF-IDF vector: term column index
// mapped to weight. Weights are non-negative, so cosine similarity between
// two FeatureVectors is always in [0, 1].
type FeatureVector map[int]float64

// VectorizerConfig holds the tunables for building the vector space model.
type VectorizerConfig struct {
	// OverviewWeight, KeywordWeight, GenreWeight, and TitleWeight multiply
	// the term frequencies contributed by each source field. The defaults
	// (3/3/3/1) emphasize thematic signal over title wording.
	OverviewWeight int
	KeywordWeight  int
	GenreWeight    int
	TitleWeight    int

	// DropSingletons removes terms appearing in only one document across
	// the catalog. Bounds vocabulary size; not required for correctness.
	DropSingletons bool
}

// defaults applies the original model's field weights for zero values.
func (c VectorizerConfig) defaults() VectorizerConfig {
	if c.OverviewWeight == 0 && c.KeywordWeight == 0 && c.GenreWeight == 0 && c.TitleWeight == 0 {
		c.OverviewWeight = 3
		c.KeywordWeight = 3
		c.GenreWeight = 3
		c.TitleWeight = 1
	}
	return c
}

// VectorSpaceModel is the full TF-IDF model over one catalog snapshot:
// vocabulary, document frequencies, and one unit-length row per movie in
// catalog order. Built once per catalog load and never mutated.
type VectorSpaceModel struct {
	vocab  map[string]int // term -> column index
	idf    []float64      // column index -> inverse document frequency
	rows   []FeatureVector
	rowIDs []int       // row index -> movie id, matching catalog order
	byID   map[int]int // movie id -> row index
}

// BuildVectorSpace constructs the vector space model from the ordered
// catalog records. Fails with a ValidationError when records is empty.
func BuildVectorSpace(records []models.MovieRecord, cfg VectorizerConfig) (*VectorSpaceModel, error) {
	if len(records) == 0 {
		return nil, models.Validationf("cannot build vector space from an empty catalog")
	}
	cfg = cfg.defaults()

	// Pass 1: per-document term frequencies and catalog-wide document
	// frequencies.
	docCounts := make([]map[string]float64, len(records))
	df := make(map[string]int)
	for i := range records {
		counts := documentTerms(&records[i], cfg)
		docCounts[i] = counts
		for term := range counts {
			df[term]++
		}
	}

	// Vocabulary in sorted term order so column indexes are stable across
	// builds of the same catalog.
	terms := make([]string, 0, len(df))
	for term, count := range df {
		if cfg.DropSingletons && count < 2 {
			continue
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		// Every term was a singleton. Dropping them all would zero every
		// vector, so keep the full vocabulary instead.
		for term := range df {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)

	m := &VectorSpaceModel{
		vocab:  make(map[string]int, len(terms)),
		idf:    make([]float64, len(terms)),
		rows:   make([]FeatureVector, len(records)),
		rowIDs: make([]int, len(records)),
		byID:   make(map[int]int, len(records)),
	}
	n := float64(len(records))
	for col, term := range terms {
		m.vocab[term] = col
		m.idf[col] = math.Log(n/float64(df[term])) + 1
	}

	// Pass 2: weight and normalize each document.
	for i := range records {
		vec := make(FeatureVector)
		var norm float64
		for term, tf := range docCounts[i] {
			col, ok := m.vocab[term]
			if !ok {
				continue
			}
			w := tf * m.idf[col]
			vec[col] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for col := range vec {
				vec[col] /= norm
			}
		}
		m.rows[i] = vec
		m.rowIDs[i] = records[i].ID
		m.byID[records[i].ID] = i
	}

	return m, nil
}

// VectorOf returns the feature vector for a movie id, or ErrNotFound.
func (m *VectorSpaceModel) VectorOf(id int) (FeatureVector, error) {
	row, ok := m.byID[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return m.rows[row], nil
}

// Len returns the number of document rows.
func (m *VectorSpaceModel) Len() int {
	return len(m.rows)
}

// VocabularySize returns the number of distinct indexed terms.
func (m *VectorSpaceModel) VocabularySize() int {
	return len(m.vocab)
}

// Dot computes the dot product of two sparse vectors. Both sides are
// unit-normalized at build time, so this is cosine similarity.
func Dot(a, b FeatureVector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for col, w := range a {
		if other, ok := b[col]; ok {
			sum += w * other
		}
	}
	return sum
}

// documentTerms builds the weighted term-frequency map for one record.
// Overview and title are tokenized free text; each genre and keyword is one
// atomic token (lowercased, never split). Missing fields contribute nothing.
func documentTerms(rec *models.MovieRecord, cfg VectorizerConfig) map[string]float64 {
	counts := make(map[string]float64)

	addTokens := func(text string, weight int) {
		if weight <= 0 || text == "" {
			return
		}
		for _, tok := range Tokenize(text) {
			counts[tok] += float64(weight)
		}
	}
	addAtomic := func(values []string, weight int) {
		if weight <= 0 {
			return
		}
		for _, v := range values {
			v = strings.ToLower(strings.TrimSpace(v))
			if v != "" {
				counts[v] += float64(weight)
			}
		}
	}

	addTokens(rec.Overview, cfg.OverviewWeight)
	addAtomic(rec.Keywords, cfg.KeywordWeight)
	addAtomic(rec.Genres, cfg.GenreWeight)
	addTokens(rec.Title, cfg.TitleWeight)

	return counts
}

// Tokenize lowercases free text, splits on any non-alphanumeric rune, and
// drops single-character tokens and English stop words.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	out := fields[:0]
	for _, f := range fields {
		if len(f) < 2 || stopWords[f] {
			continue
		}
		out = append(out, f)
	}
	return out
}

// stopWords is the set of common English words excluded from free-text
// fields. Genre and keyword tokens bypass this filter entirely.
var stopWords = map[string]bool{
	"about": true, "after": true, "all": true, "also": true, "an": true,
	"and": true, "are": true, "as": true, "at": true, "be": true,
	"because": true, "been": true, "before": true, "but": true, "by": true,
	"can": true, "could": true, "did": true, "do": true, "does": true,
	"for": true, "from": true, "had": true, "has": true, "have": true,
	"he": true, "her": true, "here": true, "him": true, "his": true,
	"how": true, "if": true, "in": true, "into": true, "is": true,
	"it": true, "its": true, "just": true, "more": true, "most": true,
	"must": true, "my": true, "no": true, "not": true, "now": true,
	"of": true, "on": true, "only": true, "or": true, "other": true,
	"our": true, "out": true, "over": true, "she": true, "so": true,
	"some": true, "such": true, "than": true, "that": true, "the": true,
	"their": true, "them": true, "then": true, "there": true, "these": true,
	"they": true, "this": true, "those": true, "through": true, "to": true,
	"under": true, "up": true, "very": true, "was": true, "we": true,
	"were": true, "what": true, "when": true, "where": true, "which": true,
	"while": true, "who": true, "will": true, "with": true, "would": true,
	"you": true, "your": true,
}
