package event

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/treeplant/event-manager/internal/errdef"
	"github.com/treeplant/event-manager/pkg/model"

	"gorm.io/gorm"
)

//goland:noinspection GoExportedFuncWithUnexportedType
func NewRepository(db *gorm.DB) *repository {
	return &repository{db}
}

type repository struct {
	db *gorm.DB
}

func (r repository) create(ctx context.Context, event *model.Event) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Create(&event).Error
	if err != nil {
		return fmt.Errorf("failed to create event: %v", err)
	}

	return nil
}

func (r repository) findById(ctx context.Context, id uint) (*model.Event, error) {
	var event *model.Event
	err := r.db.
		WithContext(ctx).
		First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("event not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event with id %d: %v", id, err)
	}
	return event, nil
}

func (r repository) findUpcoming(ctx context.Context, now time.Time) ([]model.Event, error) {
	events := []model.Event{}
	err := r.db.
		WithContext(ctx).
		Where("date > ?", now).
		Order("date asc").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find upcoming events: %v", err)
	}
	return events, nil
}

// findByOwner returns the events owned by the given normalized email, soonest
// first.
func (r repository) findByOwner(ctx context.Context, userEmail string) ([]model.Event, error) {
	events := []model.Event{}
	err := r.db.
		WithContext(ctx).
		Where("user_email = ?", userEmail).
		Order("date asc").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events of %q: %v", userEmail, err)
	}
	return events, nil
}

func (r repository) findByIds(ctx context.Context, ids []uint) ([]model.Event, error) {
	events := []model.Event{}
	err := r.db.
		WithContext(ctx).
		Where("id IN ?", ids).
		Order("date asc").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find events: %v", err)
	}
	return events, nil
}

// update replaces every mutable column of the event. The record is rebuilt
// from the request, not patched.
func (r repository) update(ctx context.Context, event *model.Event) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	db := r.db.
		WithContext(ctx).
		Model(&model.Event{}).
		Where("id = ?", event.ID).
		Select("Title", "Description", "EventType", "Thumbnail", "Location", "Date", "UserEmail", "UpdatedAt").
		Updates(event)
	if db.Error != nil {
		return fmt.Errorf("failed to update event with id %d: %v", event.ID, db.Error)
	}
	if db.RowsAffected < 1 {
		// the event was deleted between the ownership check and the update
		return errdef.NewNotFound("event not found")
	}

	return nil
}

// delete removes the event and all join records referencing it in a single
// transaction, so a cascade can't leave orphaned joins behind.
func (r repository) delete(ctx context.Context, id uint) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		db := tx.Delete(&model.Event{}, id)
		if db.Error != nil {
			return fmt.Errorf("failed to delete event with id %d: %v", id, db.Error)
		}
		if db.RowsAffected < 1 {
			return errdef.NewNotFound("event not found")
		}

		err := tx.Where("event_id = ?", id).Delete(&model.EventJoin{}).Error
		if err != nil {
			return fmt.Errorf("failed to delete joins of event %d: %v", id, err)
		}

		return nil
	})
}
