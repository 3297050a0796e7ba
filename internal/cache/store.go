package cache

import (
	"context"
	"sync"
	"time"
)

// State es el estado de una entrada del cache.
type State string

const (
	// StateEmpty: nunca se hizo fetch (o fue invalidada).
	StateEmpty State = "empty"
	// StateLoading: hay un fetch en vuelo para esta key.
	StateLoading State = "loading"
	// StateReady: hay datos buenos + timestamp del último fetch.
	StateReady State = "ready"
	// StateErrored: el último fetch falló; puede conservar datos stale.
	StateErrored State = "errored"
)

// Key identifica una colección cacheada + sus parámetros de filtro.
type Key struct {
	Collection string
	Filter     string
}

// Snapshot es lo que observa un lector: estado + últimos datos/error.
// Data es inmutable: una mutación nunca edita el snapshot in place,
// reemplaza la entrada completa después del round trip.
type Snapshot struct {
	State     State
	Data      any
	Err       error
	UpdatedAt time.Time
	Stale     bool
}

// FetchFunc trae la colección desde el colaborador remoto.
type FetchFunc func(ctx context.Context) (any, error)

// Store es el cache de queries por proceso. No es un singleton:
// se inyecta donde haga falta (tests crean el suyo).
type Store struct {
	mu      sync.Mutex
	entries map[Key]*entry
	now     func() time.Time
}

type entry struct {
	state     State
	data      any
	err       error
	updatedAt time.Time
	stale     bool

	// gen sube en cada invalidación; un fetch que arrancó con otra gen
	// se descarta al llegar (supersede).
	gen    uint64
	flight *flight
}

type flight struct {
	done chan struct{}
}

func NewStore() *Store {
	return &Store{
		entries: make(map[Key]*entry),
		now:     time.Now,
	}
}

func (s *Store) ensure(key Key) *entry {
	e, ok := s.entries[key]
	if !ok {
		e = &entry{state: StateEmpty}
		s.entries[key] = e
	}
	return e
}

func (e *entry) snapshot() Snapshot {
	return Snapshot{
		State:     e.state,
		Data:      e.data,
		Err:       e.err,
		UpdatedAt: e.updatedAt,
		Stale:     e.stale,
	}
}

// Get es el read-through:
// - ready => devuelve el snapshot tal cual.
// - loading => se cuelga del fetch en vuelo (de-dup: un solo fetch por key).
// - empty/errored => dispara fetch y aplica el resultado si la gen no cambió.
// Si una invalidación supersede al fetch en vuelo, su resultado se descarta
// y el lector reintenta con un fetch fresco.
func (s *Store) Get(ctx context.Context, key Key, fetch FetchFunc) (Snapshot, error) {
	for {
		s.mu.Lock()
		e := s.ensure(key)

		if e.state == StateReady {
			snap := e.snapshot()
			s.mu.Unlock()
			return snap, nil
		}

		if e.flight != nil {
			f := e.flight
			s.mu.Unlock()
			select {
			case <-f.done:
				// Reintenta: si el fetch aplicó, el próximo loop ve ready/errored.
				continue
			case <-ctx.Done():
				return Snapshot{State: StateLoading}, ctx.Err()
			}
		}

		// empty o errored sin fetch en vuelo: este lector es el dueño del fetch.
		gen := e.gen
		f := &flight{done: make(chan struct{})}
		e.flight = f
		e.state = StateLoading
		s.mu.Unlock()

		data, err := fetch(ctx)

		s.mu.Lock()
		if e.flight == f {
			e.flight = nil
		}
		close(f.done)

		if e.gen != gen {
			// Superseded por una invalidación durante el vuelo: descartar
			// y reintentar con datos frescos.
			s.mu.Unlock()
			continue
		}

		if err != nil {
			// stale-while-revalidate: si había datos buenos de antes, se
			// conservan marcados stale para que la vista pueda mostrarlos.
			e.state = StateErrored
			e.err = err
			e.stale = e.data != nil
		} else {
			e.state = StateReady
			e.data = data
			e.err = nil
			e.stale = false
			e.updatedAt = s.now()
		}
		snap := e.snapshot()
		s.mu.Unlock()
		return snap, nil
	}
}

// Peek devuelve el snapshot actual sin disparar fetch.
func (s *Store) Peek(key Key) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return Snapshot{State: StateEmpty}
	}
	return e.snapshot()
}

// Invalidate marca como empty todas las entradas de una colección
// (cualquier filtro). No re-fetchea: el próximo read paga el refresh.
// Un fetch en vuelo queda superseded (gen bump) y su resultado se descarta.
func (s *Store) Invalidate(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, e := range s.entries {
		if key.Collection != collection {
			continue
		}
		e.gen++
		e.state = StateEmpty
		e.data = nil
		e.err = nil
		e.stale = false
		e.updatedAt = time.Time{}
	}
}

// Forget borra las entradas de una key exacta (p.ej. cuando una vista
// deja de existir y nadie más lee ese filtro).
func (s *Store) Forget(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[key]; ok {
		e.gen++
		delete(s.entries, key)
	}
}
