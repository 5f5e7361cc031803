package seed

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fashionistas/fashionistas-api/internal/domain"
	postgresrepo "github.com/fashionistas/fashionistas-api/internal/repository/postgres"
)

// Seeder loads one event and its related rows. Writes are upserts keyed on
// payload-fixed ids, so running the same payload twice leaves exactly one
// event row and the same ticket tiers. On failure the runner compensates the
// steps that had succeeded with per-event deletes; tables themselves are
// never rolled back.
type Seeder struct {
	store  *postgresrepo.Store
	runner *Runner
	logger *slog.Logger
}

func NewSeeder(store *postgresrepo.Store, logger *slog.Logger) *Seeder {
	return &Seeder{
		store:  store,
		runner: NewRunner(logger),
		logger: logger,
	}
}

func (s *Seeder) Seed(ctx context.Context, p *Payload) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("seed: invalid payload: %w", err)
	}

	steps := []Step{
		{
			Name: "ensure schema",
			Run: func(ctx context.Context) error {
				return s.store.RunTx(ctx, nil, func(ctx context.Context, tx postgresrepo.DB) error {
					return postgresrepo.EnsureSchema(ctx, tx)
				})
			},
		},
		{
			Name: "upsert event",
			Run: func(ctx context.Context) error {
				return s.store.Events().Upsert(ctx, &domain.Event{
					ID:                   p.Event.ID,
					OrganizerID:          p.Event.OrganizerID,
					Title:                p.Event.Title,
					Description:          p.Event.Description,
					Venue:                p.Event.Venue,
					Capacity:             p.Event.Capacity,
					Starts:               p.Event.StartsAt,
					Ends:                 p.Event.EndsAt,
					RegistrationDeadline: p.Event.RegistrationDeadline,
					Status:               domain.EventStatus(p.Event.Status),
				})
			},
			Compensate: func(ctx context.Context) error {
				return s.store.Events().DeleteRows(ctx, p.Event.ID)
			},
		},
		{
			Name: "upsert tickets",
			Run: func(ctx context.Context) error {
				for _, t := range p.Tickets {
					tier := &domain.TicketTier{
						ID:                t.ID,
						EventID:           p.Event.ID,
						TicketType:        t.TicketType,
						Price:             t.Price,
						QuantityAvailable: t.Quantity,
						EarlyBirdPrice:    t.EarlyBirdPrice,
						EarlyBirdDeadline: t.EarlyBirdDeadline,
						Benefits:          t.Benefits,
					}
					if err := s.store.Tickets().Upsert(ctx, tier); err != nil {
						return err
					}
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.store.Tickets().DeleteByEvent(ctx, p.Event.ID)
			},
		},
		{
			Name: "upsert images",
			Run: func(ctx context.Context) error {
				for _, img := range p.Images {
					if err := s.store.Images().Upsert(ctx, p.Event.ID, img.URL, img.Category, img.Position); err != nil {
						return err
					}
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.store.Images().DeleteByEvent(ctx, p.Event.ID)
			},
		},
		{
			Name: "upsert sponsors",
			Run: func(ctx context.Context) error {
				for _, sp := range p.Sponsors {
					if err := s.store.Sponsors().UpsertEventSponsor(ctx, p.Event.ID, sp.Name, sp.Tier); err != nil {
						return err
					}
				}
				return nil
			},
			Compensate: func(ctx context.Context) error {
				return s.store.Sponsors().DeleteEventSponsors(ctx, p.Event.ID)
			},
		},
		{
			Name: "verify",
			Run: func(ctx context.Context) error {
				return s.verify(ctx, p)
			},
		},
	}

	return s.runner.Run(ctx, steps)
}

// verify confirms each related table holds rows for the event.
func (s *Seeder) verify(ctx context.Context, p *Payload) error {
	if _, err := s.store.Events().Get(ctx, p.Event.ID); err != nil {
		return fmt.Errorf("event row missing: %w", err)
	}

	tickets, err := s.store.Tickets().CountByEvent(ctx, p.Event.ID)
	if err != nil {
		return err
	}
	if tickets != int64(len(p.Tickets)) {
		return fmt.Errorf("expected %d ticket tiers, found %d", len(p.Tickets), tickets)
	}

	if len(p.Images) > 0 {
		images, err := s.store.Images().CountByEvent(ctx, p.Event.ID)
		if err != nil {
			return err
		}
		if images == 0 {
			return fmt.Errorf("no image rows for event %d", p.Event.ID)
		}
	}

	if len(p.Sponsors) > 0 {
		sponsors, err := s.store.Sponsors().CountEventSponsors(ctx, p.Event.ID)
		if err != nil {
			return err
		}
		if sponsors == 0 {
			return fmt.Errorf("no sponsor rows for event %d", p.Event.ID)
		}
	}

	return nil
}
