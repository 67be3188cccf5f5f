package ports

import "context"

// QueryCache define el puerto de memoización de vistas filtradas.
// Guarda los IDs de la vista (en orden) por la clave canónica de los parámetros.
// Un error de la caché nunca debe impedir responder: el caso de uso recalcula la vista.
type QueryCache interface {
	Get(ctx context.Context, key string) (ids []string, ok bool, err error)
	Set(ctx context.Context, key string, ids []string) error
}
