package models

// Sort orders accepted by ListQuery.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// ListQuery describes a page of users to fetch.
// Zero values are replaced by defaults in the service layer.
type ListQuery struct {
	// Page is the 1-based page number.
	Page int `json:"page"`

	// PageSize is the maximum number of users on a page.
	PageSize int `json:"page_size"`

	// SortBy is the column used for ordering: name, email or created_at.
	SortBy string `json:"sort_by"`

	// SortOrder is either "asc" or "desc".
	SortOrder string `json:"sort_order"`

	// Search is an optional case-insensitive substring matched against
	// name and email.
	Search string `json:"search,omitempty"`
}

// Offset returns the number of rows to skip for the query's page.
func (q ListQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.PageSize
}

// UserPage is one page of a user listing together with paging metadata.
type UserPage struct {
	PageNum         int    `json:"pageNum"`
	PageSize        int    `json:"pageSize"`
	Count           int    `json:"count"`
	Total           int    `json:"total"`
	PageTotal       int    `json:"pageTotal"`
	HasPreviousPage bool   `json:"hasPreviousPage"`
	HasNextPage     bool   `json:"hasNextPage"`
	Data            []User `json:"data"`
}
