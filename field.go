package mask

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/yaitoo/mask/masker"
)

// Field holds the text of a masked input and reformats it on every change.
type Field struct {
	mu sync.Mutex

	formatter *Formatter
	text      string

	state    State
	stateKey string
	logger   *slog.Logger
}

type FieldOption func(fd *Field)

// WithState persist field text in s under key
func WithState(s State, key string) FieldOption {
	return func(fd *Field) {
		fd.state = s
		fd.stateKey = key
	}
}

// WithFieldLogger set logger for field
func WithFieldLogger(l *slog.Logger) FieldOption {
	return func(fd *Field) {
		fd.logger = l
	}
}

// NewField create a field formatted by f, a nil f leaves text unformatted.
// If a State is set, the field starts with its saved text reformatted by f.
func NewField(f *Formatter, options ...FieldOption) *Field {
	fd := &Field{
		formatter: f,
	}

	for _, o := range options {
		o(fd)
	}

	if fd.formatter == nil {
		fd.formatter = New("")
	}

	if fd.logger == nil {
		fd.logger = slog.Default()
	}

	if fd.state != nil {
		if v, ok := Object[string](fd.state, fd.stateKey); ok {
			fd.update(v)
		}
	}

	return fd
}

// SetText formats s and stores the result as the field's text
func (fd *Field) SetText(s string) string {
	fd.mu.Lock()
	defer fd.mu.Unlock()

	return fd.update(s)
}

func (fd *Field) Text() string {
	fd.mu.Lock()
	defer fd.mu.Unlock()

	return fd.text
}

// Clear empties the field
func (fd *Field) Clear() {
	fd.SetText("")
}

// SetPattern changes the pattern and reformats the current text
func (fd *Field) SetPattern(pattern string) string {
	fd.mu.Lock()
	defer fd.mu.Unlock()

	fd.formatter.SetPattern(pattern)
	return fd.update(fd.text)
}

// SetPrefix changes the prefix and reformats the current text
func (fd *Field) SetPrefix(prefix string) string {
	fd.mu.Lock()
	defer fd.mu.Unlock()

	old := fd.formatter.Prefix()
	fd.formatter.SetPrefix(prefix)

	// the old prefix is not user content
	return fd.update(strings.TrimPrefix(fd.text, old))
}

func (fd *Field) MaxLength() int {
	return fd.formatter.MaxLength()
}

func (fd *Field) update(s string) string {
	fd.text = fd.formatter.Format(s)

	if fd.state != nil {
		if fd.text == "" {
			fd.state.Set(fd.stateKey, nil)
		} else {
			fd.state.Set(fd.stateKey, fd.text)
		}
	}

	fd.logger.Debug("mask: Field:SetText",
		slog.String("key", fd.stateKey),
		slog.String("text", masker.Redact(fd.text)))

	return fd.text
}
