package service

import "errors"

// Errores por request. Se comparan con errors.Is en los handlers; el
// texto envuelto lleva el contexto (la consulta original, el parámetro
// inválido).
var (
	// ErrServiceUnavailable: el motor todavía no terminó (o falló) la
	// inicialización. Nunca servimos contra estado parcial.
	ErrServiceUnavailable = errors.New("recommender no está listo")

	// ErrMovieNotFound: ningún título del catálogo quedó suficientemente
	// cerca de la consulta del usuario.
	ErrMovieNotFound = errors.New("película no encontrada")

	// ErrInvalidParameter: count/limit fuera de rango.
	ErrInvalidParameter = errors.New("parámetro inválido")
)
