package masker

import "unicode"

// Class character class a pattern slot accepts
type Class uint8

const (
	// Literal is copied into output as-is and consumes no input
	Literal Class = iota
	// Digit decimal digit
	Digit
	// Letter any letter
	Letter
	// Lower lowercase letter
	Lower
	// Upper uppercase letter
	Upper
	// Alnum letter or digit
	Alnum
)

// Rules maps placeholder runes in a pattern to the class they accept.
type Rules map[rune]Class

// DefaultRules returns the standard placeholder set:
//
//	# digit
//	@ letter
//	a lowercase letter
//	A uppercase letter
//	* letter or digit
func DefaultRules() Rules {
	return Rules{
		'#': Digit,
		'@': Letter,
		'a': Lower,
		'A': Upper,
		'*': Alnum,
	}
}

// Match reports whether r can fill a slot of class c
func (c Class) Match(r rune) bool {
	switch c {
	case Digit:
		return unicode.IsDigit(r)
	case Letter:
		return unicode.IsLetter(r)
	case Lower:
		return unicode.IsLower(r)
	case Upper:
		return unicode.IsUpper(r)
	case Alnum:
		return isAlnum(r)
	}

	return false
}

func (c Class) String() string {
	switch c {
	case Literal:
		return "literal"
	case Digit:
		return "digit"
	case Letter:
		return "letter"
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	case Alnum:
		return "alnum"
	}

	return "unknown"
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}
