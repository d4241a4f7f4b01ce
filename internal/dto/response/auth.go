package response

// TokenPairResponse mirrors the login payload the frontend expects:
// both tokens plus the identifying claims.
type TokenPairResponse struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type AccessTokenResponse struct {
	Access string `json:"access"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}
