package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// authResponse is returned by both login and register.
type authResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
}

// validateResponse mirrors the introspection endpoint's historical shape;
// valid is the string "true", not a boolean.
type validateResponse struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Valid    string `json:"valid"`
}
