package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"

	"taskboard/internal/core/domain"
	"taskboard/internal/core/service"
)

func TestAuthenticateEmptyUsername(t *testing.T) {
	RegisterTestingT(t)

	svc := service.NewIdentityService()

	_, err := svc.Authenticate(context.Background(), "")

	Expect(err).To(HaveOccurred())

	var validationErr *domain.ValidationError
	Expect(err).To(BeAssignableToTypeOf(validationErr))
}

func TestAuthenticateEchoesUsername(t *testing.T) {
	RegisterTestingT(t)

	svc := service.NewIdentityService()

	claim, err := svc.Authenticate(context.Background(), "bob")

	Expect(err).To(BeNil())
	Expect(claim).To(Equal(domain.IdentityClaim{Username: "bob"}))
}
