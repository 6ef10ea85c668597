package validators

import (
	"net/http"
	"strings"

	"github.com/luxemoda/storefront-backend/internal/browse"
	pkgerrors "github.com/luxemoda/storefront-backend/pkg/errors"
)

// ParseBrowseQuery reads the catalog filter/sort/page parameters off the
// request URL. Unknown sort keys are rejected; malformed prices are dropped
// by the browse parser.
func ParseBrowseQuery(r *http.Request, defaultPageSize int) (browse.Query, error) {
	values := r.URL.Query()

	if raw := strings.TrimSpace(values.Get("sort")); raw != "" {
		if browse.ParseSortKey(raw) == browse.SortUnset {
			return browse.Query{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown sort key").
				WithDetails(map[string]any{"field": "sort", "value": raw})
		}
	}

	return browse.ParseQuery(values, defaultPageSize), nil
}

// SanitizeString trims whitespace and enforces a hard length ceiling on
// free-text input.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 && len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}
