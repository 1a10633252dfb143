package relevance

import (
	"context"
	"math"
	"regexp"
	"strings"

	"github.com/poiesic/qaforge/core"
)

// TFIDF is the lexical relevance strategy. For each call it vectorizes the
// question together with the pool over a shared vocabulary with smoothed
// inverse-document-frequency weights, then scores each pool member by cosine
// similarity to the question vector.
//
// The vocabulary is rebuilt per call; the pool differs per question and the
// corpus sizes involved make fitting cheap compared to a generation call.
type TFIDF struct {
	tokenPattern *regexp.Regexp
}

// NewTFIDF creates a lexical selector.
func NewTFIDF() *TFIDF {
	return &TFIDF{
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
	}
}

// Select implements Selector.
func (t *TFIDF) Select(ctx context.Context, question string, pool []core.Segment, topN int) ([]core.Segment, error) {
	if len(pool) == 0 || topN <= 0 {
		return []core.Segment{}, nil
	}

	// Corpus is {question} ∪ pool; index 0 is the question.
	corpus := make([][]string, 0, len(pool)+1)
	corpus = append(corpus, t.tokenize(question))
	for i := range pool {
		corpus = append(corpus, t.tokenize(pool[i].Content))
	}

	vocabulary, idf, err := fit(corpus)
	if err != nil {
		return nil, err
	}

	questionVec := vectorize(corpus[0], vocabulary, idf)
	scores := make([]float64, len(pool))
	for i := range pool {
		scores[i] = dotF64(questionVec, vectorize(corpus[i+1], vocabulary, idf))
	}

	return rankTopN(pool, scores, topN), nil
}

func (t *TFIDF) tokenize(text string) []string {
	return t.tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// fit builds the shared vocabulary and smoothed IDF weights over the corpus.
func fit(corpus [][]string) (map[string]int, []float64, error) {
	df := make(map[string]int)
	for _, tokens := range corpus {
		seen := make(map[string]struct{}, len(tokens))
		for _, tok := range tokens {
			if _, ok := seen[tok]; ok {
				continue
			}
			seen[tok] = struct{}{}
			df[tok]++
		}
	}
	if len(df) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	vocabulary := make(map[string]int, len(df))
	idf := make([]float64, 0, len(df))
	n := float64(len(corpus))
	for term, count := range df {
		vocabulary[term] = len(idf)
		// Smoothed IDF, as in standard tf-idf vectorizers.
		idf = append(idf, math.Log((1+n)/(1+float64(count)))+1.0)
	}
	return vocabulary, idf, nil
}

// vectorize computes the L2-normalized tf-idf vector for a token sequence.
func vectorize(tokens []string, vocabulary map[string]int, idf []float64) map[int]float64 {
	tf := make(map[int]int, len(tokens))
	total := 0
	for _, tok := range tokens {
		if idx, ok := vocabulary[tok]; ok {
			tf[idx]++
			total++
		}
	}
	vec := make(map[int]float64, len(tf))
	if total == 0 {
		return vec
	}
	norm := 0.0
	for idx, count := range tf {
		v := float64(count) / float64(total) * idf[idx]
		vec[idx] = v
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// dotF64 computes the dot product of two sparse vectors. Both are
// L2-normalized, so this is their cosine similarity.
func dotF64(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	sum := 0.0
	for idx, v := range a {
		sum += v * b[idx]
	}
	return sum
}
