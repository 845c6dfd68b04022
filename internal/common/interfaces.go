package common

// TokenVerifier turns a raw bearer token into claims.
type TokenVerifier interface {
	ValidToken(tokenString string) (*Claims, error)
}

// TokenIssuer signs an identity into a token.
type TokenIssuer interface {
	// Ready reports ErrMissingSecret when no token can be signed.
	Ready() error
	GenerateToken(id Identity) (string, error)
}
