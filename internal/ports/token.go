package ports

// TokenMirror holds the bearer token attached to outbound requests. It is a
// derived copy; the session manager owns the credential.
type TokenMirror interface {
	SetToken(token string)
	Token() string
}
