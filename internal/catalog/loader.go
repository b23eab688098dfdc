package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cineai/internal/models"
)

// ErrDataLoad indica que la fuente del catálogo no se pudo leer o que
// no produjo ninguna fila usable. Es fatal en el arranque: sin catálogo
// no hay nada que recomendar.
var ErrDataLoad = errors.New("catalog: data load failed")

// Columnas de metadata opcionales. Solo "title" es obligatoria; las
// demás se normalizan a cadena vacía cuando faltan.
var optionalColumns = []string{"genres", "keywords", "tagline", "overview", "cast", "director"}

// LoadCSV lee el catálogo desde un CSV con cabecera. El orden de filas
// del archivo define la asignación de IDs (0-based). Filas sin título
// se descartan. maxRows > 0 limita cuántas filas usables se cargan.
func LoadCSV(path string, maxRows int) ([]models.MovieRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: abriendo %s: %v", ErrDataLoad, path, err)
	}
	defer f.Close()

	return readCSV(f, maxRows)
}

func readCSV(r io.Reader, maxRows int) ([]models.MovieRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolera filas con menos columnas

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: leyendo cabecera: %v", ErrDataLoad, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	titleIdx, ok := cols["title"]
	if !ok {
		return nil, fmt.Errorf("%w: el CSV no tiene columna 'title'", ErrDataLoad)
	}

	var movies []models.MovieRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: leyendo fila: %v", ErrDataLoad, err)
		}

		title := cleanText(field(row, titleIdx))
		if title == "" {
			continue // fila no usable
		}

		m := models.MovieRecord{
			ID:    len(movies),
			Title: title,
		}
		setOptional(&m, func(col string) string {
			idx, ok := cols[col]
			if !ok {
				return ""
			}
			return field(row, idx)
		})
		m.CombinedFeatures = Combine(&m)

		movies = append(movies, m)
		if maxRows > 0 && len(movies) >= maxRows {
			break
		}
	}

	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: cero filas usables", ErrDataLoad)
	}
	return movies, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func setOptional(m *models.MovieRecord, get func(col string) string) {
	m.Genres = cleanText(get("genres"))
	m.Keywords = cleanText(get("keywords"))
	m.Tagline = cleanText(get("tagline"))
	m.Overview = cleanText(get("overview"))
	m.Cast = cleanText(get("cast"))
	m.Director = cleanText(get("director"))
}

// cleanText normaliza un campo crudo: recorta espacios y elimina
// backslashes sueltos que arrastran algunos dumps del dataset.
func cleanText(s string) string {
	s = strings.ReplaceAll(s, `\`, "")
	return strings.TrimSpace(s)
}
