package eventjoin

import (
	"context"
	"errors"
	"fmt"

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

func (r repository) create(ctx context.Context, join *model.EventJoin) error {
	// only use ctx for values (logging) and not cancellation signals on cud operations for now. ctx
	// cancellation can lead to rollbacks which we should decide individually.
	ctx = context.WithoutCancel(ctx)

	err := r.db.WithContext(ctx).Create(&join).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errdef.NewDuplicated("you have already joined this event")
	}
	if err != nil {
		return fmt.Errorf("failed to create event join: %v", err)
	}

	return nil
}

func (r repository) findByEventAndUser(ctx context.Context, eventID uint, userEmail string) (*model.EventJoin, error) {
	var join *model.EventJoin
	err := r.db.
		WithContext(ctx).
		Where("event_id = ? AND user_email = ?", eventID, userEmail).
		First(&join).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errdef.NewNotFound("no join of event %d for %q", eventID, userEmail)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find event join: %v", err)
	}
	return join, nil
}

func (r repository) findByUser(ctx context.Context, userEmail string) ([]model.EventJoin, error) {
	joins := []model.EventJoin{}
	err := r.db.
		WithContext(ctx).
		Where("user_email = ?", userEmail).
		Find(&joins).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find event joins of %q: %v", userEmail, err)
	}
	return joins, nil
}
