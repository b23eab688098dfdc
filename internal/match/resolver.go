package match

import (
	"errors"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// ErrNoMatch indica que ningún título superó el umbral mínimo de
// similitud. Preferimos fallar antes que adivinar: un título mal
// resuelto produce recomendaciones irrelevantes en silencio.
var ErrNoMatch = errors.New("match: no title above threshold")

// Resolver mapea una consulta ruidosa del usuario al título canónico
// más cercano del catálogo, por ratio de Levenshtein normalizado.
// Inmutable después de construido.
type Resolver struct {
	normalized []string // títulos normalizados, alineados con el catálogo
	minRatio   float64
}

// NewResolver construye el resolver sobre la lista de títulos del
// catálogo (el índice de cada título es su id). minRatio es el umbral
// por debajo del cual no hay match.
func NewResolver(titles []string, minRatio float64) *Resolver {
	normalized := make([]string, len(titles))
	for i, t := range titles {
		normalized[i] = Normalize(t)
	}
	return &Resolver{normalized: normalized, minRatio: minRatio}
}

// Resolve devuelve el id del título con mayor ratio contra la consulta
// y el ratio obtenido. Empates se rompen por id más bajo. Devuelve
// ErrNoMatch si el mejor ratio queda bajo el umbral o la consulta
// normalizada es vacía.
func (r *Resolver) Resolve(query string) (int, float64, error) {
	q := Normalize(query)
	if q == "" {
		return 0, 0, ErrNoMatch
	}

	bestID, bestRatio := -1, 0.0
	for id, title := range r.normalized {
		ratio := Ratio(q, title)
		if ratio > bestRatio {
			bestID, bestRatio = id, ratio
		}
	}

	if bestID < 0 || bestRatio < r.minRatio {
		return 0, 0, ErrNoMatch
	}
	return bestID, bestRatio, nil
}

// Ratio es la similitud de edición normalizada entre dos cadenas ya
// normalizadas: 1 - dist/maxLen, en [0,1].
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1
	}

	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(maxLen)
}

// Normalize deja un título en forma comparable: minúsculas, solo
// letras/dígitos/espacios, espacios colapsados.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '.' || r == '-' || r == '_' || r == '/':
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
