package domain

// IdentityClaim is the result of the login stub. It carries a username the
// client asserted about itself and nothing else: no credential was checked
// and no token was issued. Keep this type distinct from any future verified
// identity so the two can never be confused.
type IdentityClaim struct {
	Username string `json:"username"`
}
