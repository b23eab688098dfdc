package models

// ====== Modelos de request/response del API HTTP ======

type RecommendRequest struct {
	MovieName string `json:"movieName"`
	// Puntero para distinguir "no enviado" (usa el default) de un 0
	// explícito (parámetro inválido).
	NumRecommendations *int `json:"numRecommendations"`
}

// RecommendedMovie es la vista "para mostrar" de un RecItem: cast
// truncado y score como porcentaje con dos decimales, igual que la
// respuesta clásica de CineAI.
type RecommendedMovie struct {
	Title           string  `json:"title"`
	Genres          string  `json:"genres"`
	Cast            string  `json:"cast"`
	Director        string  `json:"director"`
	SimilarityScore float64 `json:"similarityScore"`
}

type RecommendResponse struct {
	InputMovie      string             `json:"inputMovie"`
	Recommendations []RecommendedMovie `json:"recommendations"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Ready           bool `json:"ready"`
	Movies          int  `json:"movies"`
	VocabularyTerms int  `json:"vocabularyTerms"`
}
