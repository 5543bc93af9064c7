package entities

// User is a technician account.
//
// Passwords are stored and compared as plain text; hardening the login flow
// is out of scope for this service.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}
