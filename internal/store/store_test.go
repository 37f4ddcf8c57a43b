package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/lgbarn/boardstate-go/internal/chess"
	"github.com/lgbarn/boardstate-go/internal/errors"
	"github.com/lgbarn/boardstate-go/internal/testutil"
)

const afterE4 = "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"

// implementations returns a fresh instance of every Store.
func implementations(t *testing.T) map[string]Store {
	t.Helper()
	bs, err := NewBadgerStore("")
	testutil.AssertNoError(t, err)
	t.Cleanup(func() { bs.Close() })
	return map[string]Store{
		"memory": NewMemoryStore(),
		"badger": bs,
	}
}

func TestStoreContract(t *testing.T) {
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			id, err := s.Create(chess.InitialFEN)
			testutil.AssertNoError(t, err)
			_, err = uuid.Parse(id)
			testutil.AssertNoError(t, err, "id %q is not a UUID", id)

			got, err := s.Load(id)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, chess.InitialFEN)

			testutil.AssertNoError(t, s.Save(id, afterE4))
			got, err = s.Load(id)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, afterE4)

			n, err := s.Count()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, n, 1)

			testutil.AssertNoError(t, s.Delete(id))
			_, err = s.Load(id)
			testutil.AssertErrorIs(t, err, errors.ErrSessionNotFound)

			n, err = s.Count()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, n, 0)
		})
	}
}

func TestStoreUnknownSession(t *testing.T) {
	unknown := uuid.NewString()
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			for _, id := range []string{unknown, "not-a-uuid", ""} {
				_, err := s.Load(id)
				testutil.AssertErrorIs(t, err, errors.ErrSessionNotFound, "Load(%q)", id)
				testutil.AssertErrorIs(t, s.Save(id, chess.InitialFEN), errors.ErrSessionNotFound, "Save(%q)", id)
				testutil.AssertErrorIs(t, s.Delete(id), errors.ErrSessionNotFound, "Delete(%q)", id)
			}
		})
	}
}

func TestStoreDistinctIDs(t *testing.T) {
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			a, err := s.Create(chess.InitialFEN)
			testutil.AssertNoError(t, err)
			b, err := s.Create(afterE4)
			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, a != b, "ids collide")

			got, err := s.Load(a)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, got, chess.InitialFEN)
		})
	}
}

func TestStoreConcurrent(t *testing.T) {
	for name, s := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			const n = 20
			ids := make([]string, n)
			var wg sync.WaitGroup
			for i := 0; i < n; i++ {
				wg.Add(1)
				go func(i int) {
					defer wg.Done()
					id, err := s.Create(fmt.Sprintf("4k3/8/8/8/8/8/8/4K3 w - - %d 1", i))
					if err != nil {
						t.Error(err)
						return
					}
					ids[i] = id
				}(i)
			}
			wg.Wait()

			count, err := s.Count()
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, count, n)
			for i, id := range ids {
				got, err := s.Load(id)
				testutil.AssertNoError(t, err)
				testutil.AssertEqual(t, got, fmt.Sprintf("4k3/8/8/8/8/8/8/4K3 w - - %d 1", i))
			}
		})
	}
}

func TestBadgerStorePersists(t *testing.T) {
	dir := t.TempDir()

	s, err := NewBadgerStore(dir)
	testutil.AssertNoError(t, err)
	id, err := s.Create(afterE4)
	testutil.AssertNoError(t, err)
	testutil.AssertNoError(t, s.Close())

	reopened, err := NewBadgerStore(dir)
	testutil.AssertNoError(t, err)
	defer reopened.Close()

	got, err := reopened.Load(id)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, afterE4)
}
