package mask

import "errors"

var (
	ErrBadDatabase = errors.New("mask: bad_database")
	ErrBadCrypto   = errors.New("mask: bad_crypto")
)

var (
	ErrProfileNotFound = errors.New("mask: profile_not_found")
	ErrProfileExists   = errors.New("mask: profile_exists")
	ErrInvalidProfile  = errors.New("mask: invalid_profile")
	ErrInvalidToken    = errors.New("mask: invalid_token")
)
