package pagination

// OffsetRequest represents an offset-based pagination request
// Page is 1-based
type OffsetRequest struct {
	Page int `json:"page" query:"page"`
	Size int `json:"size" query:"size"`
}

// Offset returns the number of items preceding the requested page
func (r OffsetRequest) Offset() int {
	if r.Page <= 1 {
		return 0
	}
	return (r.Page - 1) * r.Size
}

// Limit returns the maximum number of items on the requested page
func (r OffsetRequest) Limit() int {
	return r.Size
}

// TotalPages returns ceil(total / size). Zero items means zero pages.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	s := int64(size)
	return int((total + s - 1) / s)
}
