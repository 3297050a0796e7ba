package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

var errUpstream = errors.New("upstream: boom")

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestStore_Get_EmptyToReady(t *testing.T) {
	s := NewStore()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = fixedClock(now)

	key := Key{Collection: CollectionPatients}

	if got := s.Peek(key); got.State != StateEmpty {
		t.Fatalf("expected empty before first read, got %s", got.State)
	}

	snap, err := s.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return []string{"a", "b"}, nil
	})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if snap.State != StateReady {
		t.Fatalf("expected ready, got %s", snap.State)
	}
	if snap.UpdatedAt != now {
		t.Fatalf("expected UpdatedAt = clock, got %v", snap.UpdatedAt)
	}
	data, ok := snap.Data.([]string)
	if !ok || len(data) != 2 {
		t.Fatalf("unexpected data: %#v", snap.Data)
	}
}

func TestStore_Get_ReadyServesWithoutRefetch(t *testing.T) {
	s := NewStore()
	key := Key{Collection: CollectionClinics}

	var calls int32
	fetch := func(ctx context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		return "v1", nil
	}

	if _, err := s.Get(context.Background(), key, fetch); err != nil {
		t.Fatalf("Get #1 error: %v", err)
	}
	snap, err := s.Get(context.Background(), key, fetch)
	if err != nil {
		t.Fatalf("Get #2 error: %v", err)
	}
	if snap.Data != "v1" {
		t.Fatalf("expected cached v1, got %#v", snap.Data)
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected 1 fetch, got %d", n)
	}
}

func TestStore_Get_ErrorKeepsStaleData(t *testing.T) {
	s := NewStore()
	key := Key{Collection: CollectionVaccinations}

	if _, err := s.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return "good", nil
	}); err != nil {
		t.Fatalf("seed Get error: %v", err)
	}

	// Invalidar y fallar el refresh: errored pero sin datos previos (la
	// invalidación los descartó).
	s.Invalidate(CollectionVaccinations)
	snap, err := s.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return nil, errUpstream
	})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if snap.State != StateErrored {
		t.Fatalf("expected errored, got %s", snap.State)
	}
	if !errors.Is(snap.Err, errUpstream) {
		t.Fatalf("expected upstream error in snapshot, got %v", snap.Err)
	}
	if snap.Stale {
		t.Fatalf("expected no stale data after invalidation wiped the entry")
	}
}

func TestStore_Get_ErroredRetainsPreviousDataAsStale(t *testing.T) {
	s := NewStore()
	key := Key{Collection: CollectionUsers}

	if _, err := s.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return "good", nil
	}); err != nil {
		t.Fatalf("seed Get error: %v", err)
	}

	// Forzar un refetch sin descartar datos: marcamos errored a mano, como
	// queda una entrada tras un refresh fallido, y volvemos a fallar.
	s.mu.Lock()
	s.entries[key].state = StateErrored
	s.entries[key].err = errUpstream
	s.mu.Unlock()

	snap, err := s.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return nil, errUpstream
	})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if snap.State != StateErrored {
		t.Fatalf("expected errored, got %s", snap.State)
	}
	if !snap.Stale {
		t.Fatalf("expected stale flag when previous data survives the error")
	}
	if snap.Data != "good" {
		t.Fatalf("expected previous data retained, got %#v", snap.Data)
	}
}

func TestStore_Get_DedupSingleFetchAcrossReaders(t *testing.T) {
	s := NewStore()
	key := Key{Collection: CollectionPatients}

	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context) (any, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
			<-release
		}
		return "data", nil
	}

	const readers = 8
	var wg sync.WaitGroup
	results := make([]Snapshot, readers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		snap, _ := s.Get(context.Background(), key, fetch)
		results[0] = snap
	}()

	<-started
	for i := 1; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap, _ := s.Get(context.Background(), key, fetch)
			results[i] = snap
		}(i)
	}

	// Dar tiempo a que los lectores se cuelguen del fetch en vuelo.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("expected a single in-flight fetch, got %d", n)
	}
	for i, snap := range results {
		if snap.State != StateReady || snap.Data != "data" {
			t.Fatalf("reader %d got %s / %#v", i, snap.State, snap.Data)
		}
	}
}

func TestStore_Get_ContextCanceledWhileWaiting(t *testing.T) {
	s := NewStore()
	key := Key{Collection: CollectionClinics}

	started := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_, _ = s.Get(context.Background(), key, func(ctx context.Context) (any, error) {
			close(started)
			<-release
			return "late", nil
		})
	}()

	<-started
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, key, func(ctx context.Context) (any, error) {
		return "unreachable", nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	close(release)
}

func TestStore_Invalidate_SupersedesInFlightFetch(t *testing.T) {
	s := NewStore()
	key := Key{Collection: CollectionPatients}

	var calls int32
	inFlight := make(chan struct{})
	release := make(chan struct{})

	// Invalidar mientras el primer fetch está en vuelo: su resultado se
	// descarta y el mismo lector reintenta.
	go func() {
		<-inFlight
		s.Invalidate(CollectionPatients)
		close(release)
	}()

	snap, err := s.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			close(inFlight)
			<-release
			return "stale-result", nil
		}
		return "fresh-result", nil
	})
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if snap.Data != "fresh-result" {
		t.Fatalf("expected superseded result discarded, got %#v", snap.Data)
	}
	if n := atomic.LoadInt32(&calls); n != 2 {
		t.Fatalf("expected retry after supersede (2 fetches), got %d", n)
	}
}

func TestStore_Invalidate_OnlyTargetCollection(t *testing.T) {
	s := NewStore()
	patientsKey := Key{Collection: CollectionPatients}
	clinicsKey := Key{Collection: CollectionClinics}

	seed := func(key Key, v string) {
		if _, err := s.Get(context.Background(), key, func(ctx context.Context) (any, error) {
			return v, nil
		}); err != nil {
			t.Fatalf("seed %s error: %v", key.Collection, err)
		}
	}
	seed(patientsKey, "patients")
	seed(clinicsKey, "clinics")

	s.Invalidate(CollectionPatients)

	if got := s.Peek(patientsKey); got.State != StateEmpty {
		t.Fatalf("expected patients empty after invalidation, got %s", got.State)
	}
	if got := s.Peek(clinicsKey); got.State != StateReady {
		t.Fatalf("expected clinics untouched, got %s", got.State)
	}
}

func TestStore_Invalidate_CoversAllFiltersOfCollection(t *testing.T) {
	s := NewStore()
	k1 := Key{Collection: CollectionHealthRecords, Filter: "patient_id=p1"}
	k2 := Key{Collection: CollectionHealthRecords, Filter: "patient_id=p2"}

	for _, k := range []Key{k1, k2} {
		if _, err := s.Get(context.Background(), k, func(ctx context.Context) (any, error) {
			return "records", nil
		}); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	s.Invalidate(CollectionHealthRecords)

	if got := s.Peek(k1); got.State != StateEmpty {
		t.Fatalf("expected filtered entry 1 empty, got %s", got.State)
	}
	if got := s.Peek(k2); got.State != StateEmpty {
		t.Fatalf("expected filtered entry 2 empty, got %s", got.State)
	}
}

func TestStore_Forget_RemovesEntry(t *testing.T) {
	s := NewStore()
	key := Key{Collection: CollectionVaccinations, Filter: "patient_id=p1"}

	if _, err := s.Get(context.Background(), key, func(ctx context.Context) (any, error) {
		return "v", nil
	}); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	s.Forget(key)
	if got := s.Peek(key); got.State != StateEmpty {
		t.Fatalf("expected empty after forget, got %s", got.State)
	}
}
