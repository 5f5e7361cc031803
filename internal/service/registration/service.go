package registration

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fashionistas/fashionistas-api/internal/domain"
	"github.com/fashionistas/fashionistas-api/internal/repository"
	postgresrepo "github.com/fashionistas/fashionistas-api/internal/repository/postgres"
	redisrepo "github.com/fashionistas/fashionistas-api/internal/repository/redis"
	"github.com/fashionistas/fashionistas-api/internal/uow"
)

type Service struct {
	store  *postgresrepo.Store
	cache  *redisrepo.Cache
	pubsub *redisrepo.EventsPubSub
	uow    *uow.UoW
	now    func() time.Time
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
		uow:    uow.NewUoW(store),
		now:    time.Now,
	}
}

// Create reserves one ticket and records a pending registration. The
// availability check and the decrement are a single conditional update inside
// the transaction, so concurrent creates can never oversell a tier.
func (s *Service) Create(
	ctx context.Context,
	eventID, ticketID, userID int64,
	attendees []domain.Attendee,
) (*domain.Registration, error) {
	const op = "service.registration.Create"

	if err := domain.ValidateAttendees(attendees); err != nil {
		return nil, fmt.Errorf("%s:%w: %s", op, ErrValidation, err)
	}

	event, err := s.store.Events().Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	if event.RegistrationDeadline != nil && !s.now().Before(*event.RegistrationDeadline) {
		return nil, fmt.Errorf("%s:%w", op, ErrRegistrationClosed)
	}

	reg := &domain.Registration{
		ID:            uuid.New(),
		EventID:       eventID,
		TicketID:      ticketID,
		UserID:        userID,
		Status:        domain.RegistrationPending,
		PaymentStatus: domain.PaymentPending,
		Attendees:     attendees,
		CreatedAt:     s.now(),
	}

	err = s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		tier, err := s.store.Tickets().With(tx).Get(ctx, ticketID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrTicketNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		// a tier of another event must not drain this event's inventory
		if !tier.BelongsTo(eventID) {
			return fmt.Errorf("%s:%w", op, ErrTicketNotFound)
		}

		if err := s.store.Tickets().With(tx).Decrement(ctx, ticketID, 1); err != nil {
			if errors.Is(err, repository.ErrInsufficientInventory) {
				return fmt.Errorf("%s:%w", op, ErrSoldOut)
			}
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrTicketNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		if err := s.store.Registrations().With(tx).Insert(ctx, reg); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateEvent(ctx, eventID)
			_ = s.pubsub.PublishEventChanged(ctx, eventID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return reg, nil
}

// Confirm moves a registration to confirmed/paid. The transition is guarded
// both by the domain state machine and by the conditional update, so a
// cancelled registration can never be confirmed.
func (s *Service) Confirm(ctx context.Context, id uuid.UUID, paymentIntentID string) (*domain.Registration, error) {
	const op = "service.registration.Confirm"

	if paymentIntentID == "" {
		return nil, fmt.Errorf("%s:%w", op, ErrMissingPaymentIntent)
	}

	var reg *domain.Registration

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		r, err := s.store.Registrations().With(tx).Get(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrRegistrationNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		if err := r.Confirm(paymentIntentID); err != nil {
			return fmt.Errorf("%s:%w", op, ErrNotConfirmable)
		}

		if err := s.store.Registrations().With(tx).ConfirmPending(ctx, id, paymentIntentID); err != nil {
			if errors.Is(err, repository.ErrInvalidTransition) {
				return fmt.Errorf("%s:%w", op, ErrNotConfirmable)
			}
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrRegistrationNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		reg = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reg, nil
}

// Cancel releases the registration's ticket back to its tier. Inventory moves
// only on the first cancellation; repeating the call is a no-op success.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) error {
	const op = "service.registration.Cancel"

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		ticketID, eventID, restock, err := s.store.Registrations().With(tx).MarkCancelled(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrRegistrationNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		if !restock {
			return nil
		}

		if err := s.store.Tickets().With(tx).Increment(ctx, ticketID, 1); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrTicketNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateEvent(ctx, eventID)
			_ = s.pubsub.PublishEventChanged(ctx, eventID)
		})

		return nil
	})

	return err
}

// UpdateAttendees replaces the attendee detail list after validating every
// entry.
func (s *Service) UpdateAttendees(ctx context.Context, id uuid.UUID, attendees []domain.Attendee) error {
	const op = "service.registration.UpdateAttendees"

	if err := domain.ValidateAttendees(attendees); err != nil {
		return fmt.Errorf("%s:%w: %s", op, ErrValidation, err)
	}

	if err := s.store.Registrations().UpdateAttendees(ctx, id, attendees); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s:%w", op, ErrRegistrationNotFound)
		}
		return fmt.Errorf("%s:%w", op, err)
	}

	return nil
}

// Get returns one registration.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Registration, error) {
	const op = "service.registration.Get"

	reg, err := s.store.Registrations().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrRegistrationNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return reg, nil
}

// ListByEvent returns an event's registrations, newest first.
func (s *Service) ListByEvent(ctx context.Context, eventID int64) ([]domain.Registration, error) {
	const op = "service.registration.ListByEvent"

	if _, err := s.store.Events().Get(ctx, eventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	regs, err := s.store.Registrations().ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return regs, nil
}

// ListByUser returns a user's registrations, newest first.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]domain.Registration, error) {
	const op = "service.registration.ListByUser"

	regs, err := s.store.Registrations().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return regs, nil
}
