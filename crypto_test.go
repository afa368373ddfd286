package mask

import (
	"crypto/sha256"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignKey(t *testing.T) {
	require.Equal(t, getSignKey("jwt"), getSignKey("jwt"))
	require.NotEqual(t, getSignKey("jwt"), getSignKey("other"))

	h := sha256.Sum256([]byte("jwt"))
	require.Equal(t, h[:], getSignKey("jwt"))
	require.Len(t, getSignKey("jwt"), sha256.Size)
}

func TestRandSignKey(t *testing.T) {
	a := randSignKey()
	b := randSignKey()

	require.Len(t, a, sha256.Size)
	require.NotEqual(t, a, b)
	require.NotEqual(t, sha256.New().Sum(nil), a)
}
