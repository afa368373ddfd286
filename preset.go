package mask

// Common patterns
const (
	AccountNumber = "##-####-####-##"
	Phone         = "(###) ###-####"
	Date          = "##/##/####"
	PostCode      = "A#A #A#"
	CardNumber    = "#### #### #### ####"
)

// Presets returns the built-in patterns by name
func Presets() map[string]string {
	return map[string]string{
		"account_number": AccountNumber,
		"phone":          Phone,
		"date":           Date,
		"post_code":      PostCode,
		"card_number":    CardNumber,
	}
}
