package service

import (
	"context"

	"taskboard/internal/core/domain"
)

// IdentityService implements the login stub. Any non-empty username is
// accepted and echoed back as an IdentityClaim. Nothing is verified and no
// server-side state is created; the client is expected to remember the
// username itself.
type IdentityService struct{}

func NewIdentityService() *IdentityService {
	return &IdentityService{}
}

func (s *IdentityService) Authenticate(ctx context.Context, username string) (domain.IdentityClaim, error) {
	if username == "" {
		return domain.IdentityClaim{}, &domain.ValidationError{Field: "username", Message: "Username is required"}
	}

	return domain.IdentityClaim{Username: username}, nil
}
