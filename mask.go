package mask

import (
	"log/slog"
	"sync"

	"github.com/yaitoo/mask/masker"
)

// Formatter formats text with a mutable pattern and prefix. It is safe for concurrent use.
type Formatter struct {
	mu sync.RWMutex

	pattern string
	prefix  string
	rules   masker.Rules
	logger  *slog.Logger

	compiled masker.Pattern
}

// New create a formatter for pattern with options
func New(pattern string, options ...Option) *Formatter {
	f := &Formatter{
		pattern: pattern,
	}

	for _, o := range options {
		o(f)
	}

	if f.logger == nil {
		f.logger = slog.Default()
	}

	if len(f.rules) == 0 {
		f.rules = masker.DefaultRules()
	}

	f.compiled = masker.Compile(f.pattern, f.rules)

	return f
}

// Format formats text. An empty pattern returns text as-is.
func (f *Formatter) Format(text string) string {
	f.mu.RLock()
	p, prefix := f.compiled, f.prefix
	f.mu.RUnlock()

	return p.Format(text, prefix)
}

// FormatPtr formats text, nil is treated as empty text
func (f *Formatter) FormatPtr(text *string) string {
	if text == nil {
		return f.Format("")
	}

	return f.Format(*text)
}

// MaxLength longest output the formatter can produce: pattern plus prefix, in runes
func (f *Formatter) MaxLength() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.compiled.MaxLength(f.prefix)
}

func (f *Formatter) Pattern() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.pattern
}

func (f *Formatter) Prefix() string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.prefix
}

// SetPattern replaces the pattern and recompiles it
func (f *Formatter) SetPattern(pattern string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if pattern == f.pattern {
		return
	}

	f.pattern = pattern
	f.compiled = masker.Compile(pattern, f.rules)

	f.logger.Debug("mask: SetPattern",
		slog.String("pattern", pattern),
		slog.Int("max_length", f.compiled.MaxLength(f.prefix)))
}

func (f *Formatter) SetPrefix(prefix string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.prefix = prefix
}
