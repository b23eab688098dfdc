package catalog

import (
	"strings"

	"cineai/internal/models"
)

// Combine deriva el blob de features textuales de una película: los
// campos de metadata no vacíos unidos por un espacio, siempre en el
// mismo orden fijo (genres, keywords, tagline, overview, cast,
// director). Para campos idénticos el resultado es byte-idéntico, lo
// que hace reproducible la vectorización. Una película con todos los
// campos vacíos produce "" (su vector será todo ceros).
func Combine(m *models.MovieRecord) string {
	fields := [...]string{m.Genres, m.Keywords, m.Tagline, m.Overview, m.Cast, m.Director}

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, " ")
}
