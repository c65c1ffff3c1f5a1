package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 10
	// MaxLimit caps how many rows any listing can request.
	MaxLimit = 100
)

// Params holds the page/limit/search inputs shared by every listing endpoint.
type Params struct {
	Page   int
	Limit  int
	Search string
}

// Normalize clamps page and limit into the valid range. A zero or negative
// limit falls back to the default so TotalPages never divides by zero, and a
// negative page never produces a negative offset.
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the row offset of the requested page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages computes ceil(total/limit); zero matches yield zero pages.
func (p Params) TotalPages(total int64) int64 {
	if total <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return (total + limit - 1) / limit
}
