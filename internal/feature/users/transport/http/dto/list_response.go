package dto

// UserListResponse is the paginated public directory listing.
type UserListResponse struct {
	Users       []PublicUserResponse `json:"users"`
	Total       int64                `json:"total"`
	Pages       int                  `json:"pages"`
	CurrentPage int                  `json:"current_page"`
	PerPage     int                  `json:"per_page"`
}
