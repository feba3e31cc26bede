package domain_test

import (
	"testing"

	. "github.com/onsi/gomega"

	"taskboard/internal/core/domain"
)

func TestParseStatus(t *testing.T) {
	RegisterTestingT(t)

	for _, valid := range []string{"Todo", "Doing", "Done"} {
		status, err := domain.ParseStatus(valid)

		Expect(err).To(BeNil())
		Expect(status.String()).To(Equal(valid))
		Expect(status.IsValid()).To(BeTrue())
	}
}

func TestParseStatusRejectsUnknownValues(t *testing.T) {
	RegisterTestingT(t)

	for _, invalid := range []string{"", "todo", "DONE", "InProgress", "Deleted"} {
		_, err := domain.ParseStatus(invalid)

		Expect(err).To(HaveOccurred())

		var validationErr *domain.ValidationError
		Expect(err).To(BeAssignableToTypeOf(validationErr))
	}
}

func TestNormalizeTargetDatetime(t *testing.T) {
	RegisterTestingT(t)

	cases := map[string]string{
		"2024-05-01T10:00:00.000Z": "2024-05-01 10:00:00",
		"2024-01-01T09:00:00Z":     "2024-01-01 09:00:00",
		"2024-01-01T09:00:00":      "2024-01-01 09:00:00",
		"2024-01-01 09:00:00":      "2024-01-01 09:00:00",
		"2024-12-31T23:59:59.999":  "2024-12-31 23:59:59",
	}

	for input, want := range cases {
		Expect(domain.NormalizeTargetDatetime(input)).To(Equal(want))
	}
}
