package pagination

const (
	DefaultLimit = 50
	MaxLimit     = 100
)

// Pagination describes a limit/offset window over a result set.
type Pagination struct {
	Limit      int  `json:"limit"`
	Offset     int  `json:"offset"`
	TotalItems int  `json:"totalItems"`
	HasMore    bool `json:"hasMore"`
}

// Normalize clamps limit into [1, MaxLimit], using DefaultLimit when unset, and offset to
// zero or more.
func Normalize(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func NewPagination(limit, offset, totalItems int) *Pagination {
	limit, offset = Normalize(limit, offset)
	return &Pagination{
		Limit:      limit,
		Offset:     offset,
		TotalItems: totalItems,
		HasMore:    offset+limit < totalItems,
	}
}
