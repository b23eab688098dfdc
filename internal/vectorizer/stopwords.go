package vectorizer

import "strings"

// Lista de stopwords en inglés, el mismo conjunto base que usan los
// vectorizadores de texto clásicos. Se filtran antes de contar TF/DF.
var englishStopwordList = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "cannot",
	"could", "did", "do", "does", "doing", "down", "during", "each", "few",
	"for", "from", "further", "had", "has", "have", "having", "he", "her",
	"here", "hers", "herself", "him", "himself", "his", "how", "i", "if",
	"in", "into", "is", "it", "its", "itself", "just", "me", "more", "most",
	"my", "myself", "no", "nor", "not", "now", "of", "off", "on", "once",
	"only", "or", "other", "our", "ours", "ourselves", "out", "over", "own",
	"same", "she", "should", "so", "some", "such", "than", "that", "the",
	"their", "theirs", "them", "themselves", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until", "up",
	"very", "was", "we", "were", "what", "when", "where", "which", "while",
	"who", "whom", "why", "will", "with", "would", "you", "your", "yours",
	"yourself", "yourselves",
}

// EnglishStopwords devuelve una copia del set de stopwords por defecto.
func EnglishStopwords() map[string]struct{} {
	set := make(map[string]struct{}, len(englishStopwordList))
	for _, w := range englishStopwordList {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
