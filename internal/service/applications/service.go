package applications

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/fashionistas/fashionistas-api/internal/domain"
	"github.com/fashionistas/fashionistas-api/internal/repository"
	postgresrepo "github.com/fashionistas/fashionistas-api/internal/repository/postgres"
	"github.com/fashionistas/fashionistas-api/internal/uow"
)

type Service struct {
	store *postgresrepo.Store
	uow   *uow.UoW
	now   func() time.Time
}

func New(store *postgresrepo.Store) *Service {
	return &Service{
		store: store,
		uow:   uow.NewUoW(store),
		now:   time.Now,
	}
}

func validateApplication(app *domain.Application) error {
	return validation.ValidateStruct(app,
		validation.Field(&app.Name, validation.Required),
		validation.Field(&app.Email, validation.Required, is.Email),
		validation.Field(&app.Role, validation.Required, validation.In(
			domain.RoleModel, domain.RoleDesigner, domain.RoleSponsor,
		)),
	)
}

// Submit writes the shared application row and the role-specific detail row
// in one transaction.
func (s *Service) Submit(ctx context.Context, app *domain.Application) (*domain.Application, error) {
	const op = "service.applications.Submit"

	if err := validateApplication(app); err != nil {
		return nil, fmt.Errorf("%s:%w: %s", op, ErrValidation, err)
	}

	if _, err := s.store.Events().Get(ctx, app.EventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	app.ID = uuid.New()
	app.CreatedAt = s.now()

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		if err := s.store.Applications().With(tx).Insert(ctx, app); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return app, nil
}

// ListByEvent returns an event's applications, newest first.
func (s *Service) ListByEvent(ctx context.Context, eventID int64) ([]domain.Application, error) {
	const op = "service.applications.ListByEvent"

	if _, err := s.store.Events().Get(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	apps, err := s.store.Applications().ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return apps, nil
}
