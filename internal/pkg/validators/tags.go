package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Tag constraints mirrored by the tags table
const (
	MaxTagNameLength  = 50
	MaxTagsPerArticle = 20
)

// TagNamesValidation validates a []string of tag names: at most MaxTagsPerArticle
// entries, each non blank after trimming and no longer than MaxTagNameLength runes.
func TagNamesValidation(fl validator.FieldLevel) bool {
	names, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	if len(names) > MaxTagsPerArticle {
		return false
	}

	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" || utf8.RuneCountInString(trimmed) > MaxTagNameLength {
			return false
		}
	}
	return true
}

// New returns a validator with the custom rules of this package registered.
func New() *validator.Validate {
	validate := validator.New()
	// registration only fails for empty tags or nil funcs
	_ = validate.RegisterValidation("tagnames", TagNamesValidation)
	return validate
}
