//go:build unit
// +build unit

package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type taggedRequest struct {
	Tags []string `validate:"tagnames"`
}

func TestTagNamesValidation(t *testing.T) {
	tooMany := make([]string, MaxTagsPerArticle+1)
	for i := range tooMany {
		tooMany[i] = "tag"
	}

	tests := []struct {
		name  string
		tags  []string
		valid bool
	}{
		{"nil tags", nil, true},
		{"plain tags", []string{"go", "databases"}, true},
		{"padded tag", []string{"  go  "}, true},
		{"blank tag", []string{"go", "   "}, false},
		{"tag at limit", []string{strings.Repeat("a", MaxTagNameLength)}, true},
		{"tag above limit", []string{strings.Repeat("a", MaxTagNameLength+1)}, false},
		{"multibyte tag at limit", []string{strings.Repeat("ä", MaxTagNameLength)}, true},
		{"too many tags", tooMany, false},
	}

	validate := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&taggedRequest{Tags: tt.tags})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
