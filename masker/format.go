package masker

import "strings"

// Format reshapes raw into pattern with DefaultRules and prepends prefix.
// It never fails: runes that can't fill the current slot are dropped.
func Format(raw, pattern, prefix string) string {
	return FormatWith(raw, pattern, prefix, nil)
}

// FormatWith is Format with custom placeholder rules
func FormatWith(raw, pattern, prefix string, rules Rules) string {
	return Compile(pattern, rules).Format(raw, prefix)
}

// Format reshapes raw into the pattern.
//
// A leading prefix is stripped from raw first so formatted output can be fed back
// in unchanged. Anything that is not a letter or number is then discarded, and the
// pattern and the remaining input are walked together: literal slots are emitted
// without consuming input, placeholder slots take the next input rune that matches
// their class and skip the ones that don't. The walk stops as soon as either side
// runs out. An empty pattern returns raw untouched.
//
// Output always ends on an accepted input rune: literals reached after the last
// accepted rune are dropped, so "##-##" with "12a" gives "12" rather than "12-".
// A plain positional scan would emit "12-", which then reformats to "12"; dropping
// them keeps Format(Format(x)) == Format(x).
func (p Pattern) Format(raw, prefix string) string {
	if p.Len() == 0 {
		return raw
	}

	input := filter(trimPrefix(raw, prefix))
	if len(input) == 0 {
		return ""
	}

	out := make([]rune, 0, p.Len())
	last := 0
	i, j := 0, 0
	for i < len(p.slots) && j < len(input) {
		s := p.slots[i]
		if s.class == Literal {
			out = append(out, s.char)
			i++
			continue
		}

		if s.class.Match(input[j]) {
			out = append(out, input[j])
			last = len(out)
			i++
		}
		j++
	}

	// drop literals emitted after the last accepted rune
	out = out[:last]
	if len(out) == 0 {
		return ""
	}

	v := []rune(prefix + string(out))
	// guard only: out never holds more runes than the pattern has slots
	if n := p.MaxLength(prefix); len(v) > n {
		v = v[:n]
	}

	return string(v)
}

func trimPrefix(raw, prefix string) string {
	if prefix == "" || !strings.HasPrefix(raw, prefix) {
		return raw
	}

	return raw[len(prefix):]
}

func filter(s string) []rune {
	items := make([]rune, 0, len(s))
	for _, r := range s {
		if isAlnum(r) {
			items = append(items, r)
		}
	}

	return items
}
