package mask

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestField(t *testing.T) {
	fd := NewField(New(AccountNumber))

	require.Equal(t, "", fd.Text())
	require.Equal(t, 15, fd.MaxLength())

	// typing
	require.Equal(t, "12-34", fd.SetText("1234"))
	require.Equal(t, "12-345", fd.SetText(fd.Text()+"5"))
	require.Equal(t, "12-345", fd.Text())

	// backspace over a digit
	require.Equal(t, "12-34", fd.SetText("12-34"))

	// paste with separators
	require.Equal(t, "12-3456-7890-12", fd.SetText("12 3456 7890 1234"))

	fd.Clear()
	require.Equal(t, "", fd.Text())
}

func TestFieldConfigChange(t *testing.T) {
	fd := NewField(New(AccountNumber))
	fd.SetText("12345")

	require.Equal(t, "AU 12-345", fd.SetPrefix("AU "))
	require.Equal(t, "NZ 12-345", fd.SetPrefix("NZ "))
	require.Equal(t, "NZ 1234-5", fd.SetPattern("####-####"))
	require.Equal(t, 12, fd.MaxLength())
	require.Equal(t, "1234-5", fd.SetPrefix(""))
}

func TestFieldState(t *testing.T) {
	s := NewMemoryState()

	fd := NewField(New(Phone), WithState(s, "phone"))
	require.Equal(t, "(555) 123-4567", fd.SetText("5551234567"))

	v, ok := Object[string](s, "phone")
	require.True(t, ok)
	require.Equal(t, "(555) 123-4567", v)

	// a new field on the same key starts with the saved text
	restored := NewField(New(Phone), WithState(s, "phone"))
	require.Equal(t, "(555) 123-4567", restored.Text())

	restored.Clear()
	_, ok = s.Get("phone")
	require.False(t, ok)
}

func TestFieldRestoreShouldReformatState(t *testing.T) {
	s := NewMemoryState()
	s.Set("account", "1234567890123")

	fd := NewField(New(AccountNumber), WithState(s, "account"))
	require.Equal(t, "12-3456-7890-12", fd.Text())

	v, ok := Object[string](s, "account")
	require.True(t, ok)
	require.Equal(t, "12-3456-7890-12", v)

	// nothing formattable left, key is removed
	s.Set("date", "--")
	fd = NewField(New(Date), WithState(s, "date"))
	require.Equal(t, "", fd.Text())
	_, ok = s.Get("date")
	require.False(t, ok)
}

func TestFieldWithoutFormatter(t *testing.T) {
	fd := NewField(nil)

	require.Equal(t, "any text", fd.SetText("any text"))
	require.Equal(t, 0, fd.MaxLength())
}
