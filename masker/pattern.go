package masker

import "unicode/utf8"

type slot struct {
	class Class
	char  rune
}

// Pattern compiled format pattern. The zero value is an empty pattern.
type Pattern struct {
	src   string
	slots []slot
}

// Compile splits pattern into slots using rules. Runes missing from rules are literals.
// Empty rules fall back to DefaultRules.
func Compile(pattern string, rules Rules) Pattern {
	if len(rules) == 0 {
		rules = DefaultRules()
	}

	p := Pattern{
		src:   pattern,
		slots: make([]slot, 0, utf8.RuneCountInString(pattern)),
	}

	for _, r := range pattern {
		c, ok := rules[r]
		if !ok {
			c = Literal
		}
		p.slots = append(p.slots, slot{class: c, char: r})
	}

	return p
}

// Len number of slots, in runes
func (p Pattern) Len() int {
	return len(p.slots)
}

func (p Pattern) String() string {
	return p.src
}

// MaxLength longest output the pattern can produce with prefix
func (p Pattern) MaxLength(prefix string) int {
	return p.Len() + utf8.RuneCountInString(prefix)
}

// MaxLength longest output of pattern with prefix, counted in runes
func MaxLength(pattern, prefix string) int {
	return utf8.RuneCountInString(pattern) + utf8.RuneCountInString(prefix)
}
