package user

// Credentials is the wire form of both sign-up and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Response is returned by the server for sign-up and login.
type Response struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}
