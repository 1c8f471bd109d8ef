package ports

import (
	"context"
	"time"
)

// KVStore almacenamiento clave/valor con expiración. Lo usan el cache de consultas
// y el registro de sesiones; hay implementación en memoria y en Redis.
type KVStore interface {
	// Get devuelve ok=false si la clave no existe o expiró.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// DeletePrefix borra todas las claves que empiezan por prefix y devuelve cuántas borró.
	DeletePrefix(ctx context.Context, prefix string) (int, error)
	// Incr incrementa de forma atómica el contador decimal guardado en key (0 si no existe)
	// y renueva su expiración.
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}
