package speech

// DefaultLanguage is used whenever the caller sends a code we don't know.
const DefaultLanguage = "en"

var supportedLanguages = map[string]string{
	"en": "English",
	"bn": "Bengali",
	"hi": "Hindi",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
}

// ResolveLanguage maps a language code to itself and its display name.
// Unknown codes fall back to English instead of erroring.
func ResolveLanguage(code string) (string, string) {
	if name, ok := supportedLanguages[code]; ok {
		return code, name
	}
	return DefaultLanguage, supportedLanguages[DefaultLanguage]
}

// SupportedLanguages returns a copy of the code → display-name table.
func SupportedLanguages() map[string]string {
	out := make(map[string]string, len(supportedLanguages))
	for code, name := range supportedLanguages {
		out[code] = name
	}
	return out
}
