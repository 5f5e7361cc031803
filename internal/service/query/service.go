package query

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fashionistas/fashionistas-api/internal/domain"
	"github.com/fashionistas/fashionistas-api/internal/repository"
	postgresrepo "github.com/fashionistas/fashionistas-api/internal/repository/postgres"
	redisrepo "github.com/fashionistas/fashionistas-api/internal/repository/redis"
)

type Config struct {
	EventSummaryTTL time.Duration
	EventListTTL    time.Duration
	TicketListTTL   time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

// Service serves the public read side through the cache; writes elsewhere
// invalidate per-event keys, list pages just age out.
type Service struct {
	store *postgresrepo.Store
	cache *redisrepo.Cache
	cfg   Config
}

func New(store *postgresrepo.Store, cache *redisrepo.Cache, cfg Config) *Service {
	if cfg.EventSummaryTTL <= 0 {
		cfg.EventSummaryTTL = 60 * time.Second
	}

	if cfg.EventListTTL <= 0 {
		cfg.EventListTTL = 15 * time.Second
	}

	if cfg.TicketListTTL <= 0 {
		cfg.TicketListTTL = 15 * time.Second
	}

	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 20
	}

	if cfg.MaxPageSize <= 0 {
		cfg.MaxPageSize = 100
	}

	return &Service{
		store: store,
		cache: cache,
		cfg:   cfg,
	}
}

// GetEvent retrieves one event through the cache.
func (s *Service) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	const op = "service.query.GetEvent"

	key := redisrepo.KeyEventSummary(id)

	event, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.EventSummaryTTL,
		func(ctx context.Context) (domain.Event, error) {
			e, err := s.store.Events().Get(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return domain.Event{}, ErrEventNotFound
				}

				return domain.Event{}, err
			}

			return *e, nil
		},
	)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &event, nil
}

type EventPage struct {
	Events []domain.Event `json:"events"`
	Total  int64          `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

// ListEvents retrieves a page of events through the cache.
func (s *Service) ListEvents(ctx context.Context, limit, offset int) (*EventPage, error) {
	const op = "service.query.ListEvents"

	limit = s.clampPage(limit)
	if offset < 0 {
		offset = 0
	}

	key := redisrepo.KeyEventsPage(limit, offset)

	page, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.EventListTTL,
		func(ctx context.Context) (EventPage, error) {
			events, total, err := s.store.Events().List(ctx, limit, offset)
			if err != nil {
				return EventPage{}, err
			}

			return EventPage{
				Events: events,
				Total:  total,
				Limit:  limit,
				Offset: offset,
			}, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return &page, nil
}

// ListEventTickets retrieves an event's tiers through the cache.
func (s *Service) ListEventTickets(ctx context.Context, eventID int64) ([]domain.TicketTier, error) {
	const op = "service.query.ListEventTickets"

	key := redisrepo.KeyEventTickets(eventID)

	tiers, err := redisrepo.GetOrSetJSON(
		ctx,
		s.cache,
		key,
		s.cfg.TicketListTTL,
		func(ctx context.Context) ([]domain.TicketTier, error) {
			if _, err := s.store.Events().Get(ctx, eventID); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return nil, ErrEventNotFound
				}

				return nil, err
			}

			return s.store.Tickets().ListByEvent(ctx, eventID)
		},
	)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrEventNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return tiers, nil
}

func (s *Service) clampPage(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultPageSize
	}

	if limit > s.cfg.MaxPageSize {
		return s.cfg.MaxPageSize
	}

	return limit
}
