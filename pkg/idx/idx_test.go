package idx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewIsSortable(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	prev := NewAt(at)
	for range 50 {
		next := NewAt(at)
		require.Less(t, prev.String(), next.String())
		prev = next
	}

	later := NewAt(at.Add(time.Second))
	require.Less(t, prev.String(), later.String())
	require.Equal(t, at.Add(time.Second), later.Time())
}

func TestNewConcurrent(t *testing.T) {
	const n = 200
	var (
		wg   sync.WaitGroup
		lock sync.Mutex
		seen = make(map[ID]struct{}, n)
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := New()
			lock.Lock()
			seen[id] = struct{}{}
			lock.Unlock()
		}()
	}
	wg.Wait()
	require.Len(t, seen, n)
}

func TestParse(t *testing.T) {
	id := New()

	got, err := Parse(" " + id.String() + " ")
	require.NoError(t, err)
	require.Equal(t, id, got)

	for _, bad := range []string{"", "   ", "not-a-ulid", "01ARZ3NDEKTSV4RRFFQ69G5FAVX"} {
		_, err := Parse(bad)
		require.ErrorIs(t, err, ErrInvalid, bad)
	}

	require.True(t, Zero.IsZero())
	require.True(t, ID("bogus").Time().IsZero())
}
