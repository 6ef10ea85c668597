package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 12
	// MaxPageSize caps how many items any page can request.
	MaxPageSize = 48
)

// Params holds page pagination inputs from controllers or services.
type Params struct {
	Page     int
	PageSize int
}

// Page describes one page of a result set.
type Page struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// Normalize clamps page and page size into their allowed ranges.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Bounds returns the half-open [start, end) slice bounds for a collection of
// the given length. A page past the end yields an empty range.
func (p Params) Bounds(length int) (int, int) {
	p = p.Normalize()
	start := (p.Page - 1) * p.PageSize
	if start >= length {
		return length, length
	}
	end := start + p.PageSize
	if end > length {
		end = length
	}
	return start, end
}

// Describe builds the page metadata for a collection of the given length.
func (p Params) Describe(length int) Page {
	p = p.Normalize()
	totalPages := length / p.PageSize
	if length%p.PageSize != 0 {
		totalPages++
	}
	if totalPages == 0 {
		totalPages = 1
	}
	return Page{
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalItems: length,
		TotalPages: totalPages,
	}
}
