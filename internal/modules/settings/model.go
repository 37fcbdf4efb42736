package settings

// Language is a display locale of the terminal.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Valid reports whether l is a supported locale.
func (l Language) Valid() bool {
	return l == LanguageEnglish || l == LanguageArabic
}
