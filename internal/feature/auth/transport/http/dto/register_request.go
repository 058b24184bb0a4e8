// Package dto defines data transfer objects for the auth feature's HTTP transport layer.
package dto

// RegisterReq represents the request body for the /register endpoint.
// It uses Gin's binding tags for validation: required fields, email format,
// password length, confirmation match and the YYYY-MM-DD date format.
type RegisterReq struct {
	FullName        string   `json:"full_name" binding:"required"`
	Email           string   `json:"email" binding:"required,email"`
	Password        string   `json:"password" binding:"required,min=6"`
	ConfirmPassword string   `json:"confirm_password" binding:"required,eqfield=Password"`
	DateOfBirth     string   `json:"date_of_birth" binding:"required,datetime=2006-01-02"`
	Gender          string   `json:"gender" binding:"required"`
	PhoneNumber     string   `json:"phone_number"`
	Interests       []string `json:"interests"`
	Bio             string   `json:"bio"`
}
