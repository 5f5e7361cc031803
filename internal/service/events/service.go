package events

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/fashionistas/fashionistas-api/internal/domain"
	"github.com/fashionistas/fashionistas-api/internal/repository"
	postgresrepo "github.com/fashionistas/fashionistas-api/internal/repository/postgres"
	redisrepo "github.com/fashionistas/fashionistas-api/internal/repository/redis"
)

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisrepo.EventsPubSub
}

func New(
	store *postgresrepo.Store,
	cache *redisrepo.Cache,
	pubsub *redisrepo.EventsPubSub,
) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		pubsub: pubsub,
	}
}

func validateEvent(e *domain.Event) error {
	err := validation.ValidateStruct(e,
		validation.Field(&e.Title, validation.Required),
		validation.Field(&e.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&e.Starts, validation.Required),
		validation.Field(&e.Ends, validation.Required),
	)
	if err != nil {
		return err
	}
	if !e.Ends.After(e.Starts) {
		return errors.New("ends_at must be after starts_at")
	}
	return nil
}

// Create inserts a new event. Events start out as drafts unless the caller
// sets a status explicitly.
func (s *Service) Create(ctx context.Context, e *domain.Event) (int64, error) {
	const op = "service.events.Create"

	if err := validateEvent(e); err != nil {
		return 0, fmt.Errorf("%s:%w: %s", op, ErrValidation, err)
	}

	if e.Status == "" {
		e.Status = domain.EventDraft
	}

	id, err := s.store.Events().Create(ctx, e)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return id, nil
}

// Update rewrites an event's mutable fields.
func (s *Service) Update(ctx context.Context, e *domain.Event) error {
	const op = "service.events.Update"

	if err := validateEvent(e); err != nil {
		return fmt.Errorf("%s:%w: %s", op, ErrValidation, err)
	}

	if err := s.store.Events().Update(ctx, e); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return fmt.Errorf("%s:%w", op, err)
	}

	_ = s.cache.InvalidateEvent(ctx, e.ID)
	_ = s.pubsub.PublishEventChanged(ctx, e.ID)

	return nil
}

// Delete soft-deletes an event; the row is kept with status=deleted. Deleting
// an event that is already gone answers not-found.
func (s *Service) Delete(ctx context.Context, id int64) error {
	const op = "service.events.Delete"

	if err := s.store.Events().SoftDelete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return fmt.Errorf("%s:%w", op, err)
	}

	_ = s.cache.InvalidateEvent(ctx, id)
	_ = s.pubsub.PublishEventChanged(ctx, id)

	return nil
}
