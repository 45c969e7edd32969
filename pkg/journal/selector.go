package journal

// Candidate is one ranked retrieval result. The searcher returns
// candidates best-first; the selector never re-ranks.
type Candidate struct {
	Score   float64
	Content string
}

// SelectContext picks the grounding context for the journal prompt: the
// first (highest ranked) candidate at or above minSimilarity, or "" when
// nothing qualifies. With minSimilarity 0 any non-empty candidate list
// yields a selection, even a weak match.
func SelectContext(candidates []Candidate, minSimilarity float64) string {
	if len(candidates) == 0 {
		return ""
	}
	top := candidates[0]
	if top.Score < minSimilarity {
		return ""
	}
	return top.Content
}
