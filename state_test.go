package mask

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryState(t *testing.T) {
	s := NewMemoryState()

	s.Set("name", "value")
	v, ok := Object[string](s, "name")
	require.True(t, ok)
	require.Equal(t, "value", v)

	// wrong type
	_, ok = Object[int](s, "name")
	require.False(t, ok)

	// nil removes
	s.Set("name", nil)
	_, ok = s.Get("name")
	require.False(t, ok)

	s.Set("n", 1)
	s.Delete("n")
	require.Equal(t, 0, s.Len())
}

func TestMemoryStateConcurrentAccess(t *testing.T) {
	s := NewMemoryState()
	maxIndex := 200

	var wg sync.WaitGroup
	for i := 0; i <= maxIndex; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Set(strconv.Itoa(i), i)
			s.Get(strconv.Itoa(i / 2))
		}(i)
	}
	wg.Wait()

	require.Equal(t, maxIndex+1, s.Len())
	for i := 0; i <= maxIndex; i++ {
		v, ok := Object[int](s, strconv.Itoa(i))
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}
