package dto

// UpdateUserReq represents the request body for PUT /users/:id.
// All fields are optional; absent fields are left untouched.
type UpdateUserReq struct {
	FullName    *string   `json:"full_name" binding:"omitempty,min=1"`
	Email       *string   `json:"email" binding:"omitempty,email"`
	PhoneNumber *string   `json:"phone_number"`
	DateOfBirth *string   `json:"date_of_birth" binding:"omitempty,datetime=2006-01-02"`
	Gender      *string   `json:"gender" binding:"omitempty,min=1"`
	Interests   *[]string `json:"interests"`
	Bio         *string   `json:"bio"`
}
