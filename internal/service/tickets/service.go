package tickets

import (
	"context"
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
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

func validateTier(t *domain.TicketTier) error {
	return validation.ValidateStruct(t,
		validation.Field(&t.TicketType, validation.Required),
		validation.Field(&t.Price, validation.By(func(any) error {
			if t.Price.IsNegative() {
				return errors.New("must be zero or positive")
			}
			return nil
		})),
		validation.Field(&t.QuantityAvailable, validation.Min(0)),
	)
}

// CreateTier adds a tier to an event.
func (s *Service) CreateTier(ctx context.Context, t *domain.TicketTier) (int64, error) {
	const op = "service.tickets.CreateTier"

	if err := validateTier(t); err != nil {
		return 0, fmt.Errorf("%s:%w: %s", op, ErrValidation, err)
	}

	if _, err := s.store.Events().Get(ctx, t.EventID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return 0, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	id, err := s.store.Tickets().Create(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	_ = s.cache.InvalidateEvent(ctx, t.EventID)

	return id, nil
}

// UpdateTier rewrites a tier's pricing and metadata.
func (s *Service) UpdateTier(ctx context.Context, t *domain.TicketTier) error {
	const op = "service.tickets.UpdateTier"

	if err := validateTier(t); err != nil {
		return fmt.Errorf("%s:%w: %s", op, ErrValidation, err)
	}

	if err := s.store.Tickets().Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%s:%w", op, ErrTicketNotFound)
		}
		return fmt.Errorf("%s:%w", op, err)
	}

	_ = s.cache.InvalidateEvent(ctx, t.EventID)

	return nil
}

// Purchase sells qty tickets off one tier. The availability check and the
// decrement are one conditional update inside the transaction; when two
// purchases race for the last ticket exactly one of them wins.
func (s *Service) Purchase(
	ctx context.Context,
	ticketID int64,
	qty int,
	userID int64,
	attendees []domain.Attendee,
) (*domain.Purchase, error) {
	const op = "service.tickets.Purchase"

	if qty <= 0 {
		return nil, fmt.Errorf("%s:%w: quantity must be positive", op, ErrValidation)
	}

	if err := domain.ValidateAttendees(attendees); err != nil {
		return nil, fmt.Errorf("%s:%w: %s", op, ErrValidation, err)
	}

	var purchase *domain.Purchase

	err := s.uow.Do(ctx, func(
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

		if err := s.store.Tickets().With(tx).Decrement(ctx, ticketID, qty); err != nil {
			if errors.Is(err, repository.ErrInsufficientInventory) {
				return fmt.Errorf("%s:%w", op, ErrInsufficientInventory)
			}
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrTicketNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		now := s.now()
		p := &domain.Purchase{
			ID:          uuid.New(),
			TicketID:    ticketID,
			EventID:     tier.EventID,
			UserID:      userID,
			Quantity:    qty,
			TotalAmount: tier.TotalFor(qty, now),
			Attendees:   attendees,
			CreatedAt:   now,
		}

		if err := s.store.Tickets().With(tx).InsertPurchase(ctx, p); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		purchase = p

		after(func(ctx context.Context) {
			_ = s.cache.InvalidateEvent(ctx, tier.EventID)
			_ = s.pubsub.PublishEventChanged(ctx, tier.EventID)
		})

		return nil
	})
	if err != nil {
		return nil, err
	}

	return purchase, nil
}

// Get returns one tier.
func (s *Service) Get(ctx context.Context, id int64) (*domain.TicketTier, error) {
	const op = "service.tickets.Get"

	tier, err := s.store.Tickets().Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrTicketNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return tier, nil
}
