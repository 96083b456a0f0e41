package user

type credentialsBody struct {
	Email    string `json:"email" doc:"Account email"`
	Password string `json:"password" doc:"Plain text password"`
}

type AccountResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

type signUpInput struct {
	Body credentialsBody
}

type signUpOutput struct {
	Body AccountResponse
}

type loginInput struct {
	Body credentialsBody
}

type loginOutput struct {
	Body AccountResponse
}
