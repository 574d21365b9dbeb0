package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/treeplant/event-manager/internal/errdef"
	"github.com/treeplant/event-manager/pkg/model"

	"github.com/go-mail/mail"
)

func NewService(logger *slog.Logger, repository userRepository, dialer dialer) *Service {
	return &Service{
		logger:     logger,
		repository: repository,
		dialer:     dialer,
	}
}

type userRepository interface {
	findByEmail(ctx context.Context, email string) (*model.User, error)
	create(ctx context.Context, user *model.User) error
}

type dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type Service struct {
	logger     *slog.Logger
	repository userRepository
	dialer     dialer
}

// Register creates a user for the given email unless one already exists.
// Registration is idempotent: registering an existing email is not an error,
// the existing user is returned with inserted=false. The email is normalized
// before lookup and storage.
func (s Service) Register(ctx context.Context, email string, name string) (*model.User, bool, error) {
	normalizedEmail := model.NormalizeEmail(email)
	if normalizedEmail == "" {
		return nil, false, errdef.NewBadRequest("email is required")
	}

	existingUser, err := s.repository.findByEmail(ctx, normalizedEmail)
	if err == nil {
		return existingUser, false, nil
	}
	if !errdef.IsNotFound(err) {
		return nil, false, err
	}

	if name == "" {
		name = model.DefaultUsername
	}

	now := time.Now()
	user := &model.User{
		Username:  name,
		Email:     normalizedEmail,
		Role:      model.RoleUser,
		CreatedAt: now,
		LastLogIn: now,
	}

	err = s.repository.create(ctx, user)
	if errdef.IsDuplicated(err) {
		// a concurrent registration for the same email won the race
		existingUser, err := s.repository.findByEmail(ctx, normalizedEmail)
		if err != nil {
			return nil, false, err
		}
		return existingUser, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if err := s.sendWelcomeEmail(user); err != nil {
		// best-effort, registration has already succeeded
		s.logger.WarnContext(ctx, "Failed to send welcome email", "email", user.Email, "error", err)
	}

	return user, true, nil
}

func (s Service) sendWelcomeEmail(user *model.User) error {
	m := mail.NewMessage()
	m.SetHeader("From", "TreePlant <no-reply@treeplant.community>")
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", "Welcome to TreePlant")
	body := fmt.Sprintf("Hello %s,<br/>welcome to the TreePlant community. You can now create and join tree-planting events.", user.Username)
	m.SetBody("text/html", body)
	return s.dialer.DialAndSend(m)
}
