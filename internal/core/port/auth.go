package port

import (
	"context"

	"taskboard/internal/core/domain"
)

// IdentityService is the login stub. It accepts any non-empty username and
// echoes it back as an unverified claim.
type IdentityService interface {
	Authenticate(ctx context.Context, username string) (domain.IdentityClaim, error)
}
