package similarity

import "math"

// Entry es un par (id de película, score). Score está en [0,1]: 1.0
// significa vectores de features idénticos, 0.0 ningún término pesado
// en común.
type Entry struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

// Matrix es la matriz N×N de similitud coseno entre todos los vectores
// del catálogo, precalculada una sola vez en el arranque. Para catálogos
// de miles de películas el costo en memoria es aceptable y cada request
// queda en puro lookup. Simétrica por construcción.
type Matrix struct {
	rows [][]float64
}

// NewMatrix calcula la matriz completa a partir de los vectores del
// espacio. El vector i corresponde a la película con id i.
func NewMatrix(vectors []map[int]float64) *Matrix {
	n := len(vectors)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s := Cosine(vectors[i], vectors[j])
			rows[i][j] = s
			rows[j][i] = s
		}
	}
	return &Matrix{rows: rows}
}

// Row devuelve la similitud de la película i contra todo el catálogo
// (incluida ella misma en la posición i). El slice es estado compartido
// de solo lectura: los llamadores no deben mutarlo.
func (m *Matrix) Row(i int) []float64 { return m.rows[i] }

// Len es el número de películas de la matriz.
func (m *Matrix) Len() int { return len(m.rows) }

// Cosine calcula la similitud coseno entre dos vectores dispersos:
// dot(u,v) / (norm(u)*norm(v)). Por convención devuelve 0 cuando
// cualquiera de las normas es 0 (un vector todo-ceros es similitud 0
// contra todo, incluso contra sí mismo), para evitar división por cero.
func Cosine(u, v map[int]float64) float64 {
	var dot, normU, normV float64

	for col, x := range u {
		normU += x * x
		if y, ok := v[col]; ok {
			dot += x * y
		}
	}
	for _, y := range v {
		normV += y * y
	}

	if normU == 0 || normV == 0 {
		return 0
	}
	return dot / (math.Sqrt(normU) * math.Sqrt(normV))
}
