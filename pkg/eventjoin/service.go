package eventjoin

import (
	"context"
	"time"

	"github.com/treeplant/event-manager/internal/errdef"
	"github.com/treeplant/event-manager/pkg/model"

	"golang.org/x/exp/slices"
)

func NewService(repository joinRepository, eventService eventService) *Service {
	return &Service{
		repository:   repository,
		eventService: eventService,
	}
}

type joinRepository interface {
	create(ctx context.Context, join *model.EventJoin) error
	findByEventAndUser(ctx context.Context, eventID uint, userEmail string) (*model.EventJoin, error)
	findByUser(ctx context.Context, userEmail string) ([]model.EventJoin, error)
}

type eventService interface {
	FindById(ctx context.Context, id uint) (*model.Event, error)
	FindByIds(ctx context.Context, ids []uint) ([]model.Event, error)
}

type Service struct {
	repository   joinRepository
	eventService eventService
}

// Join registers the user's interest in an event. At most one join exists per
// (event, user) pair; joining twice is a conflict. The duplicate check runs
// before the event lookup.
func (s Service) Join(ctx context.Context, eventID uint, userEmail string, joinedAt time.Time) (*model.EventJoin, error) {
	normalizedEmail := model.NormalizeEmail(userEmail)

	_, err := s.repository.findByEventAndUser(ctx, eventID, normalizedEmail)
	if err == nil {
		return nil, errdef.NewDuplicated("you have already joined this event")
	}
	if !errdef.IsNotFound(err) {
		return nil, err
	}

	_, err = s.eventService.FindById(ctx, eventID)
	if err != nil {
		return nil, err
	}

	join := &model.EventJoin{
		EventID:   eventID,
		UserEmail: normalizedEmail,
		JoinedAt:  joinedAt,
	}
	err = s.repository.create(ctx, join)
	if err != nil {
		return nil, err
	}

	return join, nil
}

// FindJoinedEvents returns the events the user has joined, soonest first. A
// user without joins gets an empty list, not an error.
func (s Service) FindJoinedEvents(ctx context.Context, userEmail string) ([]model.Event, error) {
	joins, err := s.repository.findByUser(ctx, model.NormalizeEmail(userEmail))
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(joins))
	for _, join := range joins {
		if !slices.Contains(ids, join.EventID) {
			ids = append(ids, join.EventID)
		}
	}
	if len(ids) == 0 {
		return []model.Event{}, nil
	}

	return s.eventService.FindByIds(ctx, ids)
}
