package sponsor

import (
	"context"
	"crypto/rand"
	"encoding/base32"
	"errors"
	"fmt"
	"time"

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

// CreateAllocation reserves a block of tickets for a sponsor. Nothing is
// used yet; redemptions draw the block down one code at a time.
func (s *Service) CreateAllocation(ctx context.Context, a *domain.SponsorTicketAllocation) (int64, error) {
	const op = "service.sponsor.CreateAllocation"

	if a.QuantityAllocated <= 0 {
		return 0, fmt.Errorf("%s:%w: quantity_allocated must be positive", op, ErrValidation)
	}
	if a.TicketType == "" {
		return 0, fmt.Errorf("%s:%w: ticket_type is required", op, ErrValidation)
	}

	id, err := s.store.Sponsors().CreateAllocation(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	return id, nil
}

// Redeem converts one unit of an allocation into a single-use ticket code.
// The availability predicate and the quantity_used increment are one
// conditional update, so the allocation bound holds under concurrent
// redemptions.
func (s *Service) Redeem(ctx context.Context, allocationID int64, redeemedBy string) (*domain.SponsorTicketRedemption, error) {
	const op = "service.sponsor.Redeem"

	if redeemedBy == "" {
		return nil, fmt.Errorf("%s:%w: redeemed_by is required", op, ErrValidation)
	}

	red := &domain.SponsorTicketRedemption{
		ID:           uuid.New(),
		AllocationID: allocationID,
		RedeemedBy:   redeemedBy,
		TicketCode:   newTicketCode(),
		Status:       domain.RedemptionActive,
		RedeemedAt:   s.now(),
	}

	err := s.uow.Do(ctx, func(
		ctx context.Context,
		tx postgresrepo.DB,
		after func(uow.AfterCommit),
	) error {
		if err := s.store.Sponsors().With(tx).DrawDown(ctx, allocationID); err != nil {
			if errors.Is(err, repository.ErrAllocationUnavailable) {
				return fmt.Errorf("%s:%w", op, ErrAllocationUnavailable)
			}
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%s:%w", op, ErrAllocationNotFound)
			}
			return fmt.Errorf("%s:%w", op, err)
		}

		if err := s.store.Sponsors().With(tx).InsertRedemption(ctx, red); err != nil {
			return fmt.Errorf("%s:%w", op, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return red, nil
}

// ListAllocations returns a sponsor's allocations.
func (s *Service) ListAllocations(ctx context.Context, sponsorID int64) ([]domain.SponsorTicketAllocation, error) {
	const op = "service.sponsor.ListAllocations"

	allocs, err := s.store.Sponsors().ListAllocations(ctx, sponsorID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return allocs, nil
}

// ListRedemptions returns an allocation's redemptions.
func (s *Service) ListRedemptions(ctx context.Context, allocationID int64) ([]domain.SponsorTicketRedemption, error) {
	const op = "service.sponsor.ListRedemptions"

	if _, err := s.store.Sponsors().GetAllocation(ctx, allocationID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrAllocationNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	reds, err := s.store.Sponsors().ListRedemptions(ctx, allocationID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return reds, nil
}

var codeEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// newTicketCode returns an opaque code with enough entropy that collisions
// are handled by the unique index, not retried here.
func newTicketCode() string {
	b := make([]byte, 10)
	_, _ = rand.Read(b)
	return "FST-" + codeEncoding.EncodeToString(b)
}
