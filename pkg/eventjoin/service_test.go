package eventjoin

import (
	"context"
	"testing"
	"time"

	"github.com/treeplant/event-manager/internal/errdef"
	"github.com/treeplant/event-manager/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockJoinRepository struct{ mock.Mock }

func (m *mockJoinRepository) create(ctx context.Context, join *model.EventJoin) error {
	called := m.Called(ctx, join)
	return called.Error(0)
}

func (m *mockJoinRepository) findByEventAndUser(ctx context.Context, eventID uint, userEmail string) (*model.EventJoin, error) {
	called := m.Called(ctx, eventID, userEmail)
	join, _ := called.Get(0).(*model.EventJoin)
	return join, called.Error(1)
}

func (m *mockJoinRepository) findByUser(ctx context.Context, userEmail string) ([]model.EventJoin, error) {
	called := m.Called(ctx, userEmail)
	joins, _ := called.Get(0).([]model.EventJoin)
	return joins, called.Error(1)
}

type mockEventService struct{ mock.Mock }

func (m *mockEventService) FindById(ctx context.Context, id uint) (*model.Event, error) {
	called := m.Called(ctx, id)
	event, _ := called.Get(0).(*model.Event)
	return event, called.Error(1)
}

func (m *mockEventService) FindByIds(ctx context.Context, ids []uint) ([]model.Event, error) {
	called := m.Called(ctx, ids)
	events, _ := called.Get(0).([]model.Event)
	return events, called.Error(1)
}

func TestService_Join(t *testing.T) {
	repository := &mockJoinRepository{}
	repository.
		On("findByEventAndUser", mock.Anything, uint(42), "a@x.com").
		Return(nil, errdef.NewNotFound("no join"))
	repository.
		On("create", mock.Anything, mock.MatchedBy(func(j *model.EventJoin) bool {
			return j.EventID == 42 && j.UserEmail == "a@x.com"
		})).
		Return(nil)
	eventService := &mockEventService{}
	eventService.
		On("FindById", mock.Anything, uint(42)).
		Return(&model.Event{ID: 42}, nil)
	service := NewService(repository, eventService)

	join, err := service.Join(context.Background(), 42, " A@X.com ", time.Now())

	require.NoError(t, err)
	assert.Equal(t, uint(42), join.EventID)
	assert.Equal(t, "a@x.com", join.UserEmail)
	repository.AssertExpectations(t)
	eventService.AssertExpectations(t)
}

func TestService_Join_AlreadyJoined(t *testing.T) {
	repository := &mockJoinRepository{}
	repository.
		On("findByEventAndUser", mock.Anything, uint(42), "a@x.com").
		Return(&model.EventJoin{ID: 1, EventID: 42, UserEmail: "a@x.com"}, nil)
	eventService := &mockEventService{}
	service := NewService(repository, eventService)

	_, err := service.Join(context.Background(), 42, "a@x.com", time.Now())

	require.Error(t, err)
	assert.True(t, errdef.IsDuplicated(err))
	repository.AssertNotCalled(t, "create")
	eventService.AssertNotCalled(t, "FindById")
}

func TestService_Join_EventNotFound(t *testing.T) {
	repository := &mockJoinRepository{}
	repository.
		On("findByEventAndUser", mock.Anything, uint(42), "a@x.com").
		Return(nil, errdef.NewNotFound("no join"))
	eventService := &mockEventService{}
	eventService.
		On("FindById", mock.Anything, uint(42)).
		Return(nil, errdef.NewNotFound("event not found"))
	service := NewService(repository, eventService)

	_, err := service.Join(context.Background(), 42, "a@x.com", time.Now())

	require.Error(t, err)
	assert.True(t, errdef.IsNotFound(err))
	repository.AssertNotCalled(t, "create")
}

func TestService_Join_LostRace(t *testing.T) {
	repository := &mockJoinRepository{}
	repository.
		On("findByEventAndUser", mock.Anything, uint(42), "a@x.com").
		Return(nil, errdef.NewNotFound("no join"))
	repository.
		On("create", mock.Anything, mock.Anything).
		Return(errdef.NewDuplicated("you have already joined this event"))
	eventService := &mockEventService{}
	eventService.
		On("FindById", mock.Anything, uint(42)).
		Return(&model.Event{ID: 42}, nil)
	service := NewService(repository, eventService)

	_, err := service.Join(context.Background(), 42, "a@x.com", time.Now())

	require.Error(t, err)
	assert.True(t, errdef.IsDuplicated(err))
}

func TestService_FindJoinedEvents(t *testing.T) {
	repository := &mockJoinRepository{}
	repository.
		On("findByUser", mock.Anything, "a@x.com").
		Return([]model.EventJoin{
			{ID: 1, EventID: 42, UserEmail: "a@x.com"},
			{ID: 2, EventID: 7, UserEmail: "a@x.com"},
		}, nil)
	eventService := &mockEventService{}
	eventService.
		On("FindByIds", mock.Anything, []uint{42, 7}).
		Return([]model.Event{{ID: 7}, {ID: 42}}, nil)
	service := NewService(repository, eventService)

	events, err := service.FindJoinedEvents(context.Background(), "A@X.com")

	require.NoError(t, err)
	assert.Len(t, events, 2)
	repository.AssertExpectations(t)
	eventService.AssertExpectations(t)
}

func TestService_FindJoinedEvents_NoJoins(t *testing.T) {
	repository := &mockJoinRepository{}
	repository.
		On("findByUser", mock.Anything, "a@x.com").
		Return([]model.EventJoin{}, nil)
	eventService := &mockEventService{}
	service := NewService(repository, eventService)

	events, err := service.FindJoinedEvents(context.Background(), "a@x.com")

	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
	eventService.AssertNotCalled(t, "FindByIds")
}
