package query

// PageRequest is a normalized page selector: Number >= 0, Size >= 1.
type PageRequest struct {
	Number int
	Size   int
}

const (
	DefaultPageNo   = 0
	DefaultPageSize = 10
)

// Normalize clamps raw client paging input. No upper bound is applied to size.
func Normalize(pageNo, pageSize int) PageRequest {
	if pageNo < 0 {
		pageNo = 0
	}
	if pageSize < 1 {
		pageSize = 1
	}
	return PageRequest{Number: pageNo, Size: pageSize}
}

// Offset is the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// Page is the list response envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	PageNumber    int   `json:"pageNumber"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

func NewPage[T any](content []T, req PageRequest, total int64) Page[T] {
	if content == nil {
		content = []T{}
	}
	pages := 0
	if req.Size > 0 && total > 0 {
		pages = int((total + int64(req.Size) - 1) / int64(req.Size))
	}
	return Page[T]{
		Content:       content,
		PageNumber:    req.Number,
		PageSize:      req.Size,
		TotalElements: total,
		TotalPages:    pages,
	}
}

// MapPage converts page content while keeping its metadata.
func MapPage[T, U any](p Page[T], f func(T) U) Page[U] {
	out := make([]U, 0, len(p.Content))
	for _, v := range p.Content {
		out = append(out, f(v))
	}
	return Page[U]{
		Content:       out,
		PageNumber:    p.PageNumber,
		PageSize:      p.PageSize,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}
