package models

// RecItem es una película recomendada junto a su score de similitud
// coseno (en [0,1]) contra la película resuelta.
type RecItem struct {
	Movie MovieRecord `json:"movie"`
	Score float64     `json:"score"`
}

// Recommendation es el resultado de una petición de recomendaciones:
// el título canónico al que se resolvió la consulta y los ítems
// ordenados por score descendente (empates por id ascendente).
type Recommendation struct {
	ResolvedTitle string    `json:"resolvedTitle"`
	Items         []RecItem `json:"items"`
}
