package pagination

// =====================================================
// PAGE ENVELOPE
// =====================================================
// Uniform wrapper returned by every paginated listing operation
// across all services. Page numbers are 0-based.

type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"page_number"`
	PageSize      int   `json:"page_size"`
	TotalElements int64 `json:"total_elements"`
	TotalPages    int   `json:"total_pages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
}

// NewPageResponse assembles the envelope from a raw page of mapped items
// plus the total element count reported by the store.
func NewPageResponse[T any](content []T, page, size int, total int64) *PageResponse[T] {
	if content == nil {
		content = []T{}
	}

	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}

	return &PageResponse[T]{
		Content:       content,
		PageNumber:    page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}

// Params carries the pagination/sort inputs every list endpoint accepts.
type Params struct {
	Page    int    `form:"page"`
	Size    int    `form:"size"`
	SortBy  string `form:"sort_by"`
	SortDir string `form:"sort_dir"` // "asc" | "desc"
}

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Normalize clamps page/size into safe bounds. Sort validation is the
// services' job since the whitelist differs per entity.
func (p *Params) Normalize() {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	if p.Size > MaxPageSize {
		p.Size = MaxPageSize
	}
}

// Offset converts the 0-based page index into a row offset.
func (p Params) Offset() int {
	return p.Page * p.Size
}
