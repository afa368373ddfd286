package mask

import (
	"crypto/rand"
	"crypto/sha256"
)

func getSignKey(key string) []byte {
	h := sha256.Sum256([]byte(key))
	return h[:]
}

// randSignKey is used when no key is configured, tokens then only verify within the same Store
func randSignKey() []byte {
	key := make([]byte, sha256.Size)
	if _, err := rand.Read(key); err != nil {
		panic(err.Error())
	}

	return key
}
