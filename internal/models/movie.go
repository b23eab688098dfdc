package models

// MovieRecord es una entrada del catálogo en memoria. ID es la posición
// 0-based del registro en el catálogo y también su fila en la matriz de
// similitud; ambos nunca se desalinean.
type MovieRecord struct {
	ID       int    `json:"id" bson:"-"`
	Title    string `json:"title" bson:"title"`
	Genres   string `json:"genres,omitempty" bson:"genres,omitempty"`
	Keywords string `json:"keywords,omitempty" bson:"keywords,omitempty"`
	Tagline  string `json:"tagline,omitempty" bson:"tagline,omitempty"`
	Overview string `json:"overview,omitempty" bson:"overview,omitempty"`
	Cast     string `json:"cast,omitempty" bson:"cast,omitempty"`
	Director string `json:"director,omitempty" bson:"director,omitempty"`

	// CombinedFeatures se deriva de los campos de arriba al (re)cargar el
	// catálogo; nunca se serializa hacia los clientes.
	CombinedFeatures string `json:"-" bson:"-"`
}
