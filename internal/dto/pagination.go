package dto

// PageQuery is bound from list endpoint query strings.
type PageQuery struct {
	Page  int `form:"page,default=1"   validate:"min=1"`
	Limit int `form:"limit,default=10" validate:"min=1,max=200"`
}

// Paginated is the list response shape shared by every collection endpoint.
type Paginated[T any] struct {
	Data       []T   `json:"data"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginated computes TotalPages from the count, never returning nil Data.
// Limit is floored at 1 so a bad query value cannot divide by zero.
func NewPaginated[T any](data []T, total int64, page, limit int) *Paginated[T] {
	if data == nil {
		data = []T{}
	}
	if limit < 1 {
		limit = 1
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return &Paginated[T]{Data: data, Total: total, Page: page, Limit: limit, TotalPages: pages}
}

// MessageResponse wraps write-operation confirmations: {message, data}.
type MessageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
