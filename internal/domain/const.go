package domain

const (
	IdentityCtxKey = "gc-identity"
)

const (
	SessionCookieName    = "gc_session"
	OAuthStateCookieName = "gc_oauth_state"
)
