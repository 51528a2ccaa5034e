package dto

// CredentialsRequest is the body of register and login
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView is the public part of a user
type UserView struct {
	Email string `json:"email"`
}

// UserResponse is returned by a successful register or login
type UserResponse struct {
	OK   bool     `json:"ok"`
	User UserView `json:"user"`
}
