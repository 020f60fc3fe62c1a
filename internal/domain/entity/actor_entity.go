package entity

// Actor is the caller of an operation: the raw session token forwarded to
// the backends and the claims decoded from it.
type Actor struct {
	Token   string
	Role    Role
	Subject string
}

// SessionToken is what the bot backend issues on login.
type SessionToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
