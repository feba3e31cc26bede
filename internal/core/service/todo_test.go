package service_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/suite"

	. "taskboard/pkg/test"

	"taskboard/internal/adapter/database/sqlite/repository"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/port"
	"taskboard/internal/core/service"
)

var ctx = context.Background()

type TodoServiceTestSuite struct {
	suite.Suite
	Service  port.TodoService
	TodoRepo port.TodoRepository
}

func (s *TodoServiceTestSuite) SetupTest() {
	db := InitTestDB()

	s.TodoRepo = repository.NewTodoRepository(db, nil)
	s.Service = service.NewTodoService(s.TodoRepo, nil)
}

func TestTodoServiceTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoServiceTestSuite))
}

func (s *TodoServiceTestSuite) TestCreateRejectsMissingFields() {
	cases := [][3]string{
		{"", "Write spec", "2024-01-01T09:00:00Z"},
		{"alice", "", "2024-01-01T09:00:00Z"},
		{"alice", "Write spec", ""},
	}

	for _, c := range cases {
		_, err := s.Service.Create(ctx, c[0], c[1], c[2])

		Expect(err).To(HaveOccurred())

		var validationErr *domain.ValidationError
		Expect(err).To(BeAssignableToTypeOf(validationErr))
	}

	todos, err := s.Service.ListAll(ctx)
	Expect(err).To(BeNil())
	Expect(todos).To(BeEmpty())
}

func (s *TodoServiceTestSuite) TestCreateNormalizesTargetDatetime() {
	id, err := s.Service.Create(ctx, "alice", "Write spec", "2024-05-01T10:00:00.000Z")

	Expect(err).To(BeNil())
	Expect(id).To(BeNumerically(">", 0))

	todos, err := s.Service.ListByUsername(ctx, "alice")

	Expect(err).To(BeNil())
	Expect(todos).To(HaveLen(1))
	Expect(todos[0].TargetDatetime).To(Equal("2024-05-01 10:00:00"))
	Expect(todos[0].Status).To(Equal(domain.StatusTodo))
}

func (s *TodoServiceTestSuite) TestCreateAssignsDistinctIds() {
	first, err := s.Service.Create(ctx, "alice", "Task one", "2024-01-01T09:00:00Z")
	Expect(err).To(BeNil())

	// Same payload on purpose: create is not idempotent
	second, err := s.Service.Create(ctx, "alice", "Task one", "2024-01-01T09:00:00Z")
	Expect(err).To(BeNil())

	Expect(second).NotTo(Equal(first))

	todos, _ := s.Service.ListByUsername(ctx, "alice")
	Expect(todos).To(HaveLen(2))
}

func (s *TodoServiceTestSuite) TestListAllOrdersByTargetDatetimeDescending() {
	s.Service.Create(ctx, "alice", "Earliest", "2024-01-01T09:00:00Z")
	s.Service.Create(ctx, "bob", "Latest", "2024-12-01T09:00:00Z")
	s.Service.Create(ctx, "alice", "Middle", "2024-06-01T09:00:00Z")

	todos, err := s.Service.ListAll(ctx)

	Expect(err).To(BeNil())
	Expect(todos).To(HaveLen(3))

	for i := 1; i < len(todos); i++ {
		Expect(todos[i-1].TargetDatetime >= todos[i].TargetDatetime).To(BeTrue())
	}

	Expect(todos[0].Title).To(Equal("Latest"))
	Expect(todos[2].Title).To(Equal("Earliest"))
}

func (s *TodoServiceTestSuite) TestListByUsernameUnknownUserIsEmpty() {
	s.Service.Create(ctx, "alice", "Write spec", "2024-01-01T09:00:00Z")

	todos, err := s.Service.ListByUsername(ctx, "nobody")

	Expect(err).To(BeNil())
	Expect(todos).To(BeEmpty())
}

func (s *TodoServiceTestSuite) TestSetStatusRejectsInvalidStatusWithoutMutating() {
	id, _ := s.Service.Create(ctx, "alice", "Write spec", "2024-01-01T09:00:00Z")

	err := s.Service.SetStatus(ctx, id, "InProgress")

	Expect(err).To(HaveOccurred())

	var validationErr *domain.ValidationError
	Expect(err).To(BeAssignableToTypeOf(validationErr))

	todos, _ := s.Service.ListByUsername(ctx, "alice")
	Expect(todos[0].Status).To(Equal(domain.StatusTodo))
}

func (s *TodoServiceTestSuite) TestSetStatusOverwritesStatus() {
	id, _ := s.Service.Create(ctx, "alice", "Write spec", "2024-01-01T09:00:00Z")

	Expect(s.Service.SetStatus(ctx, id, "Doing")).To(Succeed())

	todos, _ := s.Service.ListByUsername(ctx, "alice")
	Expect(todos[0].Status).To(Equal(domain.StatusDoing))

	// Any status may move to any other, including backwards
	Expect(s.Service.SetStatus(ctx, id, "Todo")).To(Succeed())

	todos, _ = s.Service.ListByUsername(ctx, "alice")
	Expect(todos[0].Status).To(Equal(domain.StatusTodo))
}

func (s *TodoServiceTestSuite) TestSetStatusMissingIdIsSilentNoOp() {
	err := s.Service.SetStatus(ctx, 424242, "Done")

	Expect(err).To(BeNil())
}

func (s *TodoServiceTestSuite) TestDeleteMissingIdIsSilentNoOp() {
	err := s.Service.Delete(ctx, 424242)

	Expect(err).To(BeNil())
}

func (s *TodoServiceTestSuite) TestLifecycleScenario() {
	id, err := s.Service.Create(ctx, "alice", "Write spec", "2024-01-01T09:00:00Z")
	Expect(err).To(BeNil())

	todos, _ := s.Service.ListByUsername(ctx, "alice")
	Expect(todos).To(HaveLen(1))
	Expect(todos[0].ID).To(Equal(id))
	Expect(todos[0].Status).To(Equal(domain.StatusTodo))

	Expect(s.Service.SetStatus(ctx, id, "Doing")).To(Succeed())

	todos, _ = s.Service.ListByUsername(ctx, "alice")
	Expect(todos[0].Status).To(Equal(domain.StatusDoing))

	Expect(s.Service.Delete(ctx, id)).To(Succeed())

	todos, _ = s.Service.ListByUsername(ctx, "alice")
	Expect(todos).To(BeEmpty())

	all, _ := s.Service.ListAll(ctx)
	Expect(all).To(BeEmpty())
}
