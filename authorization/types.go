package authorization

import "github.com/dgrijalva/jwt-go"

// TokenType is the kind of principal a token was issued to
type TokenType string

const (
	// User tokens are issued to signed in users
	User TokenType = "user"
	// Service tokens are issued to other services
	Service TokenType = "service"
)

type tokenClaims struct {
	jwt.StandardClaims
	TokenType TokenType `json:"token_type"`
}
