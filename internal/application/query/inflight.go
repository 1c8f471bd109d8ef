package query

import "sync"

// InFlight conjunto de envíos en curso. Evita que un mismo formulario se envíe dos veces
// mientras la primera petición no ha terminado.
type InFlight struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewInFlight crea el conjunto vacío.
func NewInFlight() *InFlight {
	return &InFlight{keys: make(map[string]struct{})}
}

// Acquire reserva la clave. ok=false si ya está reservada; en caso contrario
// el caller debe llamar a release al terminar.
func (f *InFlight) Acquire(key string) (release func(), ok bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, busy := f.keys[key]; busy {
		return nil, false
	}
	f.keys[key] = struct{}{}
	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.keys, key)
			f.mu.Unlock()
		})
	}, true
}

// Len número de envíos en curso.
func (f *InFlight) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.keys)
}
