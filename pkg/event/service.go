package event

import (
	"context"
	"time"

	"github.com/treeplant/event-manager/internal/errdef"
	"github.com/treeplant/event-manager/pkg/model"
)

func NewService(repository eventRepository) *Service {
	return &Service{
		repository: repository,
	}
}

type eventRepository interface {
	create(ctx context.Context, event *model.Event) error
	findById(ctx context.Context, id uint) (*model.Event, error)
	findUpcoming(ctx context.Context, now time.Time) ([]model.Event, error)
	findByOwner(ctx context.Context, userEmail string) ([]model.Event, error)
	findByIds(ctx context.Context, ids []uint) ([]model.Event, error)
	update(ctx context.Context, event *model.Event) error
	delete(ctx context.Context, id uint) error
}

type Service struct {
	repository eventRepository
}

func (s Service) Create(ctx context.Context, event model.Event) (*model.Event, error) {
	event.UserEmail = model.NormalizeEmail(event.UserEmail)

	err := s.repository.create(ctx, &event)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func (s Service) FindUpcoming(ctx context.Context) ([]model.Event, error) {
	return s.repository.findUpcoming(ctx, time.Now())
}

func (s Service) FindByOwner(ctx context.Context, userEmail string) ([]model.Event, error) {
	return s.repository.findByOwner(ctx, model.NormalizeEmail(userEmail))
}

func (s Service) FindById(ctx context.Context, id uint) (*model.Event, error) {
	return s.repository.findById(ctx, id)
}

func (s Service) FindByIds(ctx context.Context, ids []uint) ([]model.Event, error) {
	return s.repository.findByIds(ctx, ids)
}

// Update replaces the event with the given field set. Only the owner may
// update an event; ownership is the stored owner email matching the
// caller-supplied one after normalization. The field set is only validated
// once the existence and ownership checks have passed.
func (s Service) Update(ctx context.Context, id uint, event model.Event) (*model.Event, error) {
	event.UserEmail = model.NormalizeEmail(event.UserEmail)

	existing, err := s.repository.findById(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing.UserEmail != event.UserEmail {
		return nil, errdef.NewForbidden("you are not authorized to update this event")
	}

	err = validateEventFields(event)
	if err != nil {
		return nil, err
	}

	event.ID = id
	err = s.repository.update(ctx, &event)
	if err != nil {
		return nil, err
	}

	return &event, nil
}

func validateEventFields(event model.Event) error {
	required := []struct {
		name    string
		missing bool
	}{
		{"title", event.Title == ""},
		{"description", event.Description == ""},
		{"eventType", event.EventType == ""},
		{"thumbnail", event.Thumbnail == ""},
		{"location", event.Location == ""},
		{"date", event.Date.IsZero()},
		{"userEmail", event.UserEmail == ""},
	}
	for _, field := range required {
		if field.missing {
			return errdef.NewBadRequest("%s is required", field.name)
		}
	}

	if !event.Date.After(time.Now()) {
		return errdef.NewBadRequest("event date must be in the future")
	}

	return nil
}

// Delete removes the event and cascades to its join records. Owner only.
func (s Service) Delete(ctx context.Context, id uint, userEmail string) error {
	existing, err := s.repository.findById(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserEmail != model.NormalizeEmail(userEmail) {
		return errdef.NewForbidden("you are not authorized to delete this event")
	}

	return s.repository.delete(ctx, id)
}
