package ports

// TokenService issues and checks signed bearer tokens.
//
// Validate and Subject agree by construction: a token for which Validate is
// false yields ("", false) from Subject, and a token for which Validate is
// true yields its subject id.
type TokenService interface {
	// Issue signs a token for the given user id and email.
	Issue(userID, email string) (string, error)
	// Validate reports whether the token is well-formed, correctly signed
	// and unexpired (within the configured clock-skew leeway). It never
	// returns an error: all failure modes collapse to false.
	Validate(token string) bool
	// Subject returns the subject user id carried by a valid token, or
	// ("", false) for any token Validate would reject.
	Subject(token string) (string, bool)
}
