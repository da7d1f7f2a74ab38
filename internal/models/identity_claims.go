package models

import "github.com/golang-jwt/jwt/v5"

// IdentityClaims are the claims we read from tokens issued by the hosted
// identity provider. The registered Subject is the stable user identifier
// every query is scoped by; ClientID mirrors providers that carry the client
// identifier in a private claim instead of the audience list.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	ClientID string `json:"client_id,omitempty"`
}
