package repository_test

import (
	"context"
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	. "taskboard/pkg/test"

	"taskboard/internal/adapter/database/sqlite/repository"
	"taskboard/internal/core/domain"
	"taskboard/internal/core/port"

	"taskboard/pkg/test/factory"
)

type TodoRepositoryTestSuite struct {
	suite.Suite
	TodoRepo port.TodoRepository
}

func (s *TodoRepositoryTestSuite) SetupTest() {
	db := InitTestDB()

	s.TodoRepo = repository.NewTodoRepository(db, nil)
}

func TestTodoRepositoryTestSuite(t *testing.T) {
	RegisterTestingT(t)
	suite.Run(t, new(TodoRepositoryTestSuite))
}

func (s *TodoRepositoryTestSuite) TestRepository_ListAll_Empty() {
	todos, err := s.TodoRepo.ListAll(context.Background())

	Expect(err).To(BeNil())
	Expect(todos).To(BeEmpty())
}

func (s *TodoRepositoryTestSuite) TestRepository_Create_Success() {
	todo := factory.NewTodo[domain.Todo](map[string]any{
		"Username":       "alice",
		"Title":          "Write spec",
		"TargetDatetime": "2024-01-01 09:00:00",
	})

	id, err := s.TodoRepo.Create(context.Background(), todo)

	Expect(err).To(BeNil())
	Expect(id).To(BeNumerically(">", 0))

	todos, err := s.TodoRepo.ListAll(context.Background())

	Expect(err).To(BeNil())
	Expect(todos).To(HaveLen(1))
	Expect(todos[0].ID).To(Equal(id))
	Expect(todos[0].Username).To(Equal("alice"))
	Expect(todos[0].Title).To(Equal("Write spec"))
	Expect(todos[0].TargetDatetime).To(Equal("2024-01-01 09:00:00"))
	Expect(todos[0].Status).To(Equal(domain.StatusTodo))
}

func (s *TodoRepositoryTestSuite) TestRepository_Create_IdsNeverReused() {
	first, _ := s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo]())

	err := s.TodoRepo.Delete(context.Background(), first)
	assert.NoError(s.T(), err)

	second, _ := s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo]())

	Expect(second).To(BeNumerically(">", first))
}

func (s *TodoRepositoryTestSuite) TestRepository_ListByUsername_FiltersExactly() {
	s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo](map[string]any{
		"Username": "alice",
	}))
	s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo](map[string]any{
		"Username": "bob",
	}))
	s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo](map[string]any{
		"Username": "ali",
	}))

	todos, err := s.TodoRepo.ListByUsername(context.Background(), "alice")

	Expect(err).To(BeNil())
	Expect(todos).To(HaveLen(1))
	Expect(todos[0].Username).To(Equal("alice"))
}

func (s *TodoRepositoryTestSuite) TestRepository_ListAll_OrderedByTargetDesc() {
	s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo](map[string]any{
		"Title":          "Old",
		"TargetDatetime": "2023-01-01 09:00:00",
	}))
	s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo](map[string]any{
		"Title":          "New",
		"TargetDatetime": "2025-01-01 09:00:00",
	}))

	todos, err := s.TodoRepo.ListAll(context.Background())

	Expect(err).To(BeNil())
	Expect(todos).To(HaveLen(2))
	Expect(todos[0].Title).To(Equal("New"))
	Expect(todos[1].Title).To(Equal("Old"))
}

func (s *TodoRepositoryTestSuite) TestRepository_ListAll_TiesKeepStorageOrder() {
	first, _ := s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo](map[string]any{
		"Title":          "First",
		"TargetDatetime": "2024-01-01 09:00:00",
	}))
	second, _ := s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo](map[string]any{
		"Title":          "Second",
		"TargetDatetime": "2024-01-01 09:00:00",
	}))

	todos, err := s.TodoRepo.ListAll(context.Background())

	Expect(err).To(BeNil())
	Expect(todos).To(HaveLen(2))
	Expect(todos[0].ID).To(Equal(first))
	Expect(todos[1].ID).To(Equal(second))
}

func (s *TodoRepositoryTestSuite) TestRepository_SetStatus_UpdatesRow() {
	id, _ := s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo]())

	err := s.TodoRepo.SetStatus(context.Background(), id, domain.StatusDone)
	assert.NoError(s.T(), err)

	todos, _ := s.TodoRepo.ListAll(context.Background())
	Expect(todos[0].Status).To(Equal(domain.StatusDone))
}

func (s *TodoRepositoryTestSuite) TestRepository_SetStatus_ZeroRowsIsSuccess() {
	err := s.TodoRepo.SetStatus(context.Background(), 999, domain.StatusDone)

	Expect(err).To(BeNil())
}

func (s *TodoRepositoryTestSuite) TestRepository_Delete_RemovesRow() {
	id, _ := s.TodoRepo.Create(context.Background(), factory.NewTodo[domain.Todo]())

	err := s.TodoRepo.Delete(context.Background(), id)
	assert.NoError(s.T(), err)

	todos, _ := s.TodoRepo.ListAll(context.Background())
	Expect(todos).To(BeEmpty())
}

func (s *TodoRepositoryTestSuite) TestRepository_Delete_ZeroRowsIsSuccess() {
	err := s.TodoRepo.Delete(context.Background(), 999)

	Expect(err).To(BeNil())
}
