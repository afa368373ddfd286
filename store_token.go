package mask

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ProfileClaims token payload carrying a profile
type ProfileClaims struct {
	Pattern string `json:"pattern"`
	Prefix  string `json:"prefix,omitempty"`
	jwt.RegisteredClaims
}

// SignProfile seals p into a signed token so it can be handed to a client and trusted when it comes back
func (s *Store) SignProfile(p Profile) (string, error) {
	if err := p.validate(); err != nil {
		return "", err
	}

	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, ProfileClaims{
		Pattern: p.Pattern,
		Prefix:  p.Prefix,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.Name,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})

	v, err := t.SignedString(s.signKey)
	if err != nil {
		s.logger.Error("mask: SignProfile",
			slog.String("tag", "token"),
			slog.String("name", p.Name),
			slog.Any("err", err))
		return "", ErrBadCrypto
	}

	return v, nil
}

// ParseProfile verifies token and returns the profile inside it
func (s *Store) ParseProfile(token string) (Profile, error) {
	var c ProfileClaims

	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return s.signKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		s.logger.Warn("mask: ParseProfile",
			slog.String("tag", "token"),
			slog.Any("err", err))
		return Profile{}, ErrInvalidToken
	}

	p := Profile{
		Name:    c.Subject,
		Pattern: c.Pattern,
		Prefix:  c.Prefix,
	}

	if err := p.validate(); err != nil {
		return Profile{}, ErrInvalidToken
	}

	return p, nil
}
