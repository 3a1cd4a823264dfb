package repository

const (
	// DefaultLimit is used when the caller gives no limit.
	DefaultLimit = 10
	// MaxLimit caps every page.
	MaxLimit = 100
)

// Page is a clamped pagination window: Limit in [1, MaxLimit], Offset >= 0.
type Page struct {
	Offset int
	Limit  int
}

// Clamp normalizes caller supplied offset and limit.
func Clamp(offset, limit int) Page {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Offset: offset, Limit: limit}
}
