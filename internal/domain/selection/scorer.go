package selection

import (
	"regexp"
	"strings"
)

// nonLetter matches every character that is not a lowercase letter or
// whitespace. Question text is lowercased before this is applied.
var nonLetter = regexp.MustCompile(`[^a-z\s]`)

// semanticThemes maps recurring reading themes to synonym tokens. A theme
// counts as matched when a card keyword contains the theme name and a
// question token overlaps one of the synonyms.
var semanticThemes = map[string][]string{
	"love":         {"relationship", "romance", "partner", "dating", "heart", "marriage"},
	"career":       {"work", "job", "profession", "business", "employment", "money"},
	"change":       {"transition", "transformation", "new", "different", "shift"},
	"growth":       {"development", "progress", "improvement", "learning", "evolve"},
	"decision":     {"choice", "choose", "decide", "option", "path", "direction"},
	"spirituality": {"spiritual", "soul", "purpose", "meaning", "faith", "divine"},
	"creativity":   {"creative", "art", "imagination", "inspiration", "express"},
	"health":       {"wellness", "healing", "body", "mind", "energy", "balance"},
}

// QuestionRelevance computes how topically related a question is to a card's
// keyword set. The result is a multiplier in [1.0, 2.0]: 1.0 means no
// detected relevance, 2.0 maximal relevance. The bonus is deliberately small
// so mood weighting and randomization still dominate selection.
func QuestionRelevance(question string, keywords []string, params *Params) float64 {
	tokens := normalizeQuestion(question, params.MinTokenLength)
	if len(tokens) == 0 {
		return 1.0
	}

	direct := 0
	for _, keyword := range keywords {
		kw := strings.ToLower(keyword)
		for _, token := range tokens {
			if strings.Contains(token, kw) || strings.Contains(kw, token) {
				direct++
				break
			}
		}
	}

	semantic := 0.0
	for theme, synonyms := range semanticThemes {
		if !anyKeywordContains(keywords, theme) {
			continue
		}
		if anyTokenOverlaps(tokens, synonyms) {
			semantic += params.SemanticMatchWeight
		}
	}

	totalMatches := float64(direct) + semantic
	maxPossible := min(len(keywords), len(tokens))
	if maxPossible < 1 {
		maxPossible = 1
	}

	ratio := totalMatches / float64(maxPossible)
	if ratio > 1.0 {
		ratio = 1.0
	}
	return 1.0 + ratio
}

// normalizeQuestion lowercases the question, strips everything outside
// [a-z\s], splits on whitespace and drops tokens of length <= minLen.
func normalizeQuestion(question string, minLen int) []string {
	cleaned := nonLetter.ReplaceAllString(strings.ToLower(question), "")

	var tokens []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) > minLen {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

func anyKeywordContains(keywords []string, theme string) bool {
	for _, kw := range keywords {
		if strings.Contains(strings.ToLower(kw), theme) {
			return true
		}
	}
	return false
}

func anyTokenOverlaps(tokens, synonyms []string) bool {
	for _, token := range tokens {
		for _, syn := range synonyms {
			if strings.Contains(token, syn) || strings.Contains(syn, token) {
				return true
			}
		}
	}
	return false
}
