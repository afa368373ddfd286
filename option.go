package mask

import (
	"log/slog"

	"github.com/yaitoo/mask/masker"
)

type Option func(f *Formatter)

// WithPrefix set a fixed prefix for formatted text
func WithPrefix(prefix string) Option {
	return func(f *Formatter) {
		f.prefix = prefix
	}
}

// WithRules set custom placeholder rules
func WithRules(rules masker.Rules) Option {
	return func(f *Formatter) {
		f.rules = rules
	}
}

// WithLogger set logger
func WithLogger(l *slog.Logger) Option {
	return func(f *Formatter) {
		f.logger = l
	}
}
