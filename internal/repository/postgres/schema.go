package postgres

import (
	"context"
)

// EnsureSchema creates the tables the service depends on if they are missing.
// The seeding command runs this before loading any rows; tables are never
// dropped by compensation.
func EnsureSchema(ctx context.Context, db DB) error {
	const op = "postgres.EnsureSchema"

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			organizer_id BIGINT NOT NULL,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			venue TEXT NOT NULL DEFAULT '',
			capacity INT NOT NULL CHECK (capacity > 0),
			starts_at TIMESTAMPTZ NOT NULL,
			ends_at TIMESTAMPTZ NOT NULL,
			registration_deadline TIMESTAMPTZ,
			status TEXT NOT NULL DEFAULT 'draft',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS event_tickets (
			id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			ticket_type TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			quantity_available INT NOT NULL CHECK (quantity_available >= 0),
			early_bird_price NUMERIC(10,2),
			early_bird_deadline TIMESTAMPTZ,
			group_threshold INT,
			group_discount_percent NUMERIC(5,2),
			benefits TEXT[] NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS ticket_purchases (
			id UUID PRIMARY KEY,
			ticket_id BIGINT NOT NULL REFERENCES event_tickets(id),
			event_id BIGINT NOT NULL REFERENCES events(id),
			user_id BIGINT NOT NULL,
			quantity INT NOT NULL CHECK (quantity > 0),
			total_amount NUMERIC(10,2) NOT NULL,
			attendee_details JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS event_registrations (
			id UUID PRIMARY KEY,
			event_id BIGINT NOT NULL REFERENCES events(id),
			ticket_id BIGINT NOT NULL REFERENCES event_tickets(id),
			user_id BIGINT NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			payment_status TEXT NOT NULL DEFAULT 'pending',
			payment_intent_id TEXT,
			attendee_details JSONB NOT NULL DEFAULT '[]',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sponsor_ticket_allocations (
			id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			sponsor_id BIGINT NOT NULL,
			event_id BIGINT NOT NULL REFERENCES events(id),
			ticket_type TEXT NOT NULL,
			quantity_allocated INT NOT NULL CHECK (quantity_allocated > 0),
			quantity_used INT NOT NULL DEFAULT 0
				CHECK (quantity_used >= 0 AND quantity_used <= quantity_allocated),
			expires_at TIMESTAMPTZ,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sponsor_ticket_redemptions (
			id UUID PRIMARY KEY,
			allocation_id BIGINT NOT NULL REFERENCES sponsor_ticket_allocations(id),
			redeemed_by TEXT NOT NULL,
			ticket_code TEXT NOT NULL UNIQUE,
			status TEXT NOT NULL DEFAULT 'active',
			redeemed_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS fashion_images (
			id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			url TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT '',
			position INT NOT NULL DEFAULT 0,
			UNIQUE (event_id, url)
		)`,
		`CREATE TABLE IF NOT EXISTS event_sponsors (
			id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,
			event_id BIGINT NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			tier TEXT NOT NULL DEFAULT '',
			UNIQUE (event_id, name)
		)`,
		`CREATE TABLE IF NOT EXISTS applications (
			id UUID PRIMARY KEY,
			event_id BIGINT NOT NULL REFERENCES events(id),
			role TEXT NOT NULL,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS model_applications (
			application_id UUID PRIMARY KEY REFERENCES applications(id) ON DELETE CASCADE,
			details JSONB NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS designer_applications (
			application_id UUID PRIMARY KEY REFERENCES applications(id) ON DELETE CASCADE,
			details JSONB NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS sponsor_applications (
			application_id UUID PRIMARY KEY REFERENCES applications(id) ON DELETE CASCADE,
			details JSONB NOT NULL DEFAULT '{}'
		)`,
		`CREATE INDEX IF NOT EXISTS idx_registrations_event ON event_registrations(event_id)`,
		`CREATE INDEX IF NOT EXISTS idx_registrations_user ON event_registrations(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_allocations_sponsor ON sponsor_ticket_allocations(sponsor_id)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return wrapDBErr(op, err)
		}
	}

	return nil
}
