package vectorizer

import (
	"errors"
	"math"
	"sort"
	"strings"
	"unicode"
)

// ErrEmptyVocabulary indica que el ajuste no produjo ningún término
// (por ejemplo, un catálogo donde todas las películas tienen features
// vacías). Es fatal en el arranque.
var ErrEmptyVocabulary = errors.New("vectorizer: empty vocabulary")

// Config son los parámetros de tuning del espacio vectorial.
type Config struct {
	// MinDocFrequency descarta términos que aparecen en menos de este
	// número de documentos. Valores < 1 se tratan como 1.
	MinDocFrequency int
	// MaxFeatures limita el vocabulario a los términos con mayor
	// frecuencia total en el corpus (empates por orden lexicográfico).
	// 0 o negativo = sin límite.
	MaxFeatures int
	// Stopwords se eliminan durante la tokenización. Puede ser nil.
	Stopwords map[string]struct{}
}

// Model es el espacio vectorial TF-IDF ajustado una sola vez sobre el
// corpus completo. Inmutable después de Fit: el vector i corresponde
// siempre al documento i de entrada.
type Model struct {
	vocab   map[string]int // término -> columna
	terms   []string       // columna -> término
	idf     []float64
	vectors []map[int]float64 // filas dispersas, normalizadas L2
}

// Fit ajusta el modelo sobre el corpus completo. Pesos: TF crudo por
// documento × IDF suavizado ln((1+n)/(1+df))+1, con normalización L2
// por documento. Términos comunes a todo el catálogo aportan menos
// peso discriminativo que los raros.
func Fit(docs []string, cfg Config) (*Model, error) {
	minDF := cfg.MinDocFrequency
	if minDF < 1 {
		minDF = 1
	}

	// Frecuencia de documento y frecuencia total por término.
	docFreq := make(map[string]int)
	corpusFreq := make(map[string]int)
	tokenized := make([][]string, len(docs))

	for i, doc := range docs {
		tokens := Tokenize(doc, cfg.Stopwords)
		tokenized[i] = tokens

		seen := make(map[string]bool, len(tokens))
		for _, tok := range tokens {
			corpusFreq[tok]++
			if !seen[tok] {
				docFreq[tok]++
				seen[tok] = true
			}
		}
	}

	// Filtro por frecuencia mínima de documento.
	terms := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df >= minDF {
			terms = append(terms, term)
		}
	}

	// Tope de vocabulario: nos quedamos con los términos más frecuentes
	// del corpus, como hace el vectorizador clásico con max_features.
	if cfg.MaxFeatures > 0 && len(terms) > cfg.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if corpusFreq[terms[i]] != corpusFreq[terms[j]] {
				return corpusFreq[terms[i]] > corpusFreq[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:cfg.MaxFeatures]
	}

	if len(terms) == 0 {
		return nil, ErrEmptyVocabulary
	}

	// Columnas asignadas en orden lexicográfico: el mismo corpus produce
	// siempre el mismo vocabulario.
	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, term := range terms {
		idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	vectors := make([]map[int]float64, len(docs))
	for i, tokens := range tokenized {
		vec := make(map[int]float64)
		for _, tok := range tokens {
			if col, ok := vocab[tok]; ok {
				vec[col]++
			}
		}

		var norm float64
		for col, tf := range vec {
			w := tf * idf[col]
			vec[col] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for col := range vec {
				vec[col] /= norm
			}
		}
		vectors[i] = vec
	}

	return &Model{
		vocab:   vocab,
		terms:   terms,
		idf:     idf,
		vectors: vectors,
	}, nil
}

// Vector devuelve el vector disperso (normalizado) del documento i.
func (m *Model) Vector(i int) map[int]float64 { return m.vectors[i] }

// Vectors devuelve todas las filas, alineadas con los documentos de
// entrada de Fit.
func (m *Model) Vectors() []map[int]float64 { return m.vectors }

// VocabularySize es la dimensionalidad fija del espacio.
func (m *Model) VocabularySize() int { return len(m.terms) }

// Tokenize parte un texto en términos: minúsculas, cortes en cualquier
// secuencia no alfanumérica, y filtrado de stopwords.
func Tokenize(text string, stopwords map[string]struct{}) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if stopwords == nil {
		return fields
	}

	tokens := fields[:0]
	for _, f := range fields {
		if _, skip := stopwords[f]; !skip {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
