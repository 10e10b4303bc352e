package service

// TokenService signs and verifies self-contained bearer tokens binding a
// user id with an expiry. Validation is pure computation against the
// process secret; no session state is stored anywhere.
type TokenService interface {
	// Issue creates a signed token for the user, valid for the
	// configured TTL.
	Issue(userID int64) (string, error)

	// Validate parses the token and returns the bound user id. The
	// second return is false for any failure: bad signature, malformed
	// payload, or expiry. Callers cannot tell which check failed.
	Validate(tokenString string) (int64, bool)
}
