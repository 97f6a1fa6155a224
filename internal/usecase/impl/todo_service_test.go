package impl

import (
	"context"
	"testing"
	"time"

	deliverycontext "todolist/internal/delivery/context"
	"todolist/internal/domain/entity"
	domainerrors "todolist/internal/domain/errors"
	"todolist/internal/domain/repository"
	"todolist/internal/domain/service"
	mockRepo "todolist/internal/mocks/repository"
	mockSvc "todolist/internal/mocks/service"
	"todolist/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type todoServiceFixtures struct {
	service   usecase.TodoUsecase
	txManager *mockRepo.MockTransactionManager
	todoRepo  *mockRepo.MockTodoRepository
	publisher *mockSvc.MockEventPublisher
}

func createTestTodoService(t *testing.T) todoServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	todoRepo := mockRepo.NewMockTodoRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	svc := NewTodoService(TodoServiceParams{
		TxManager: txManager,
		TodoRepo:  todoRepo,
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	return todoServiceFixtures{
		service:   svc,
		txManager: txManager,
		todoRepo:  todoRepo,
		publisher: publisher,
	}
}

func newTxTodoRepo(t *testing.T, txManager *mockRepo.MockTransactionManager) *mockRepo.MockTodoRepository {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txTodoRepo := mockRepo.NewMockTodoRepository(t)
	factory.EXPECT().TodoRepo().Return(txTodoRepo)
	expectTransaction(txManager, factory)

	return txTodoRepo
}

func eventOfType(eventType service.TodoEventType, todoID uuid.UUID) any {
	return mock.MatchedBy(func(e *service.TodoEvent) bool {
		return e.Type == eventType && e.TodoID == todoID.String()
	})
}

func newStoredTodo(owner uuid.UUID) *entity.Todo {
	created := time.Now().Add(-time.Hour)

	return &entity.Todo{
		ID:        uuid.New(),
		Title:     "Buy milk",
		UserID:    owner,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestTodoService_Create(t *testing.T) {
	fx := createTestTodoService(t)
	owner := uuid.New()
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	desc := "two litres"

	fx.todoRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(todo *entity.Todo) bool {
			return todo.Title == "Buy milk" && todo.Description == &desc && !todo.Completed && todo.UserID == owner
		})).
		Run(func(_ context.Context, todo *entity.Todo) { todo.ID = uuid.New() }).
		Return(nil)
	fx.publisher.EXPECT().
		PublishTodoEvent(mock.Anything, mock.MatchedBy(func(e *service.TodoEvent) bool {
			return e.Type == service.TodoEventCreated && e.RequestID == "req-42" && e.UserID == owner.String()
		})).
		Return(nil)

	todo, err := fx.service.Create(ctx, usecase.CreateTodoInput{Title: "Buy milk", Description: &desc}, owner)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, todo.ID)
	assert.True(t, todo.IsOwnedBy(owner))
}

func TestTodoService_Create_EmptyTitle(t *testing.T) {
	fx := createTestTodoService(t)

	_, err := fx.service.Create(context.Background(), usecase.CreateTodoInput{Title: ""}, uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestTodoService_Create_PublishFailureIsIgnored(t *testing.T) {
	fx := createTestTodoService(t)
	ctx := context.Background()

	fx.todoRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Todo")).Return(nil)
	fx.publisher.EXPECT().PublishTodoEvent(mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

	todo, err := fx.service.Create(ctx, usecase.CreateTodoInput{Title: "Walk dog"}, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "Walk dog", todo.Title)
}

func TestTodoService_Create_PublishIsBounded(t *testing.T) {
	fx := createTestTodoService(t)
	ctx := context.Background()

	fx.todoRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Todo")).Return(nil)
	fx.publisher.EXPECT().
		PublishTodoEvent(mock.Anything, mock.Anything).
		RunAndReturn(func(publishCtx context.Context, _ *service.TodoEvent) error {
			deadline, ok := publishCtx.Deadline()
			require.True(t, ok)
			assert.LessOrEqual(t, time.Until(deadline), eventPublishTimeout)

			<-publishCtx.Done()

			return publishCtx.Err()
		})

	start := time.Now()
	todo, err := fx.service.Create(ctx, usecase.CreateTodoInput{Title: "Walk dog"}, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "Walk dog", todo.Title)
	assert.Less(t, time.Since(start), eventPublishTimeout+time.Second)
}

func TestTodoService_Create_RepositoryFailure(t *testing.T) {
	fx := createTestTodoService(t)
	ctx := context.Background()
	dbErr := errors.New("disk full")

	fx.todoRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Todo")).Return(dbErr)

	_, err := fx.service.Create(ctx, usecase.CreateTodoInput{Title: "Walk dog"}, uuid.New())

	assert.ErrorIs(t, err, dbErr)
}

func TestTodoService_ListByOwner(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("returns owner's todos", func(t *testing.T) {
		fx := createTestTodoService(t)
		stored := []*entity.Todo{newStoredTodo(owner), newStoredTodo(owner)}
		fx.todoRepo.EXPECT().FindByOwner(ctx, owner).Return(stored, nil)

		todos, err := fx.service.ListByOwner(ctx, owner)

		require.NoError(t, err)
		assert.Len(t, todos, 2)
	})

	t.Run("never nil", func(t *testing.T) {
		fx := createTestTodoService(t)
		fx.todoRepo.EXPECT().FindByOwner(ctx, owner).Return(nil, nil)

		todos, err := fx.service.ListByOwner(ctx, owner)

		require.NoError(t, err)
		assert.NotNil(t, todos)
		assert.Empty(t, todos)
	})
}

func TestTodoService_GetOwned(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("owner sees the todo", func(t *testing.T) {
		fx := createTestTodoService(t)
		stored := newStoredTodo(owner)
		fx.todoRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		todo, err := fx.service.GetOwned(ctx, stored.ID, owner)

		require.NoError(t, err)
		assert.Equal(t, stored.ID, todo.ID)
	})

	t.Run("missing todo is not found", func(t *testing.T) {
		fx := createTestTodoService(t)
		id := uuid.New()
		fx.todoRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrTodoNotFound)

		_, err := fx.service.GetOwned(ctx, id, owner)

		assert.True(t, errors.Is(err, domainerrors.ErrTodoNotFound))
	})

	t.Run("foreign todo is forbidden", func(t *testing.T) {
		fx := createTestTodoService(t)
		stored := newStoredTodo(uuid.New())
		fx.todoRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		_, err := fx.service.GetOwned(ctx, stored.ID, owner)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestTodoService_Update_PartialFields(t *testing.T) {
	fx := createTestTodoService(t)
	ctx := context.Background()
	owner := uuid.New()
	desc := "original"
	stored := newStoredTodo(owner)
	stored.Description = &desc
	before := stored.UpdatedAt
	completed := true

	txTodoRepo := newTxTodoRepo(t, fx.txManager)
	txTodoRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	txTodoRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(todo *entity.Todo) bool {
			return todo.Title == "Buy milk" &&
				todo.Description != nil && *todo.Description == "original" &&
				todo.Completed &&
				todo.UpdatedAt.After(before)
		})).
		Return(nil)
	fx.publisher.EXPECT().PublishTodoEvent(mock.Anything, eventOfType(service.TodoEventUpdated, stored.ID)).Return(nil)

	todo, err := fx.service.Update(ctx, stored.ID, owner, usecase.UpdateTodoInput{Completed: &completed})

	require.NoError(t, err)
	assert.True(t, todo.Completed)
	assert.Equal(t, "Buy milk", todo.Title)
	assert.Equal(t, stored.CreatedAt, todo.CreatedAt)
}

func TestTodoService_Update_AllFields(t *testing.T) {
	fx := createTestTodoService(t)
	ctx := context.Background()
	owner := uuid.New()
	stored := newStoredTodo(owner)
	stored.Completed = true
	title := "Buy oat milk"
	desc := "barista edition"
	notCompleted := false

	txTodoRepo := newTxTodoRepo(t, fx.txManager)
	txTodoRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
	txTodoRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Todo")).Return(nil)
	fx.publisher.EXPECT().PublishTodoEvent(mock.Anything, eventOfType(service.TodoEventUpdated, stored.ID)).Return(nil)

	todo, err := fx.service.Update(ctx, stored.ID, owner, usecase.UpdateTodoInput{
		Title:       &title,
		Description: &desc,
		Completed:   &notCompleted,
	})

	require.NoError(t, err)
	assert.Equal(t, title, todo.Title)
	assert.Equal(t, desc, *todo.Description)
	assert.False(t, todo.Completed)
}

func TestTodoService_Update_Rejections(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("empty title", func(t *testing.T) {
		fx := createTestTodoService(t)
		empty := ""

		_, err := fx.service.Update(ctx, uuid.New(), owner, usecase.UpdateTodoInput{Title: &empty})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("missing todo", func(t *testing.T) {
		fx := createTestTodoService(t)
		id := uuid.New()
		txTodoRepo := newTxTodoRepo(t, fx.txManager)
		txTodoRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrTodoNotFound)

		_, err := fx.service.Update(ctx, id, owner, usecase.UpdateTodoInput{})

		assert.True(t, errors.Is(err, domainerrors.ErrTodoNotFound))
	})

	t.Run("foreign todo", func(t *testing.T) {
		fx := createTestTodoService(t)
		stored := newStoredTodo(uuid.New())
		txTodoRepo := newTxTodoRepo(t, fx.txManager)
		txTodoRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		_, err := fx.service.Update(ctx, stored.ID, owner, usecase.UpdateTodoInput{})

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}

func TestTodoService_Delete(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	t.Run("owner deletes", func(t *testing.T) {
		fx := createTestTodoService(t)
		stored := newStoredTodo(owner)
		txTodoRepo := newTxTodoRepo(t, fx.txManager)
		txTodoRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
		txTodoRepo.EXPECT().Delete(ctx, stored.ID).Return(true, nil)
		fx.publisher.EXPECT().PublishTodoEvent(mock.Anything, eventOfType(service.TodoEventDeleted, stored.ID)).Return(nil)

		deleted, err := fx.service.Delete(ctx, stored.ID, owner)

		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("row already gone", func(t *testing.T) {
		fx := createTestTodoService(t)
		stored := newStoredTodo(owner)
		txTodoRepo := newTxTodoRepo(t, fx.txManager)
		txTodoRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)
		txTodoRepo.EXPECT().Delete(ctx, stored.ID).Return(false, nil)

		deleted, err := fx.service.Delete(ctx, stored.ID, owner)

		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("missing todo before ownership", func(t *testing.T) {
		fx := createTestTodoService(t)
		id := uuid.New()
		txTodoRepo := newTxTodoRepo(t, fx.txManager)
		txTodoRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrTodoNotFound)

		_, err := fx.service.Delete(ctx, id, owner)

		assert.True(t, errors.Is(err, domainerrors.ErrTodoNotFound))
	})

	t.Run("foreign todo", func(t *testing.T) {
		fx := createTestTodoService(t)
		stored := newStoredTodo(uuid.New())
		txTodoRepo := newTxTodoRepo(t, fx.txManager)
		txTodoRepo.EXPECT().FindByID(ctx, stored.ID).Return(stored, nil)

		deleted, err := fx.service.Delete(ctx, stored.ID, owner)

		assert.False(t, deleted)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}
