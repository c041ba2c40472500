package translator

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// languageNames lists the target languages offered to users.
var languageNames = map[string]string{
	"en":    "English",
	"es":    "Spanish",
	"fr":    "French",
	"de":    "German",
	"it":    "Italian",
	"pt":    "Portuguese",
	"ru":    "Russian",
	"zh-CN": "Chinese (Simplified)",
	"ja":    "Japanese",
	"ar":    "Arabic",
}

// LanguageName returns the English display name of a language code. Codes
// outside the offered list are named by CLDR, or returned as is.
func LanguageName(code string) string {
	if name, ok := languageNames[code]; ok {
		return name
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}

// Languages returns the offered language codes in sorted order.
func Languages() []string {
	codes := make([]string, 0, len(languageNames))
	for code := range languageNames {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ValidateLanguage checks that code is a well-formed BCP 47 tag.
func ValidateLanguage(code string) error {
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("invalid language code %q: %w", code, err)
	}
	return nil
}
