package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fashionistas/fashionistas-api/internal/domain"
)

type ApplicationRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ApplicationRepo) With(db DB) *ApplicationRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ApplicationRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// roleTable maps an application role to its detail table.
var roleTable = map[domain.ApplicationRole]string{
	domain.RoleModel:    "model_applications",
	domain.RoleDesigner: "designer_applications",
	domain.RoleSponsor:  "sponsor_applications",
}

// Insert writes the shared application row plus the role-specific detail row.
// Callers run it inside a transaction so both land or neither does.
func (r *ApplicationRepo) Insert(ctx context.Context, app *domain.Application) error {
	const op = "postgres.ApplicationRepo.Insert"

	db := r.handle()

	table, ok := roleTable[app.Role]
	if !ok {
		return fmt.Errorf("%s: unknown role %q", op, app.Role)
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO applications(id, event_id, role, name, email)
		 VALUES ($1, $2, $3, $4, $5)`,
		app.ID, app.EventID, app.Role, app.Name, app.Email,
	); err != nil {
		return wrapDBErr(op, err)
	}

	details, err := json.Marshal(app.Details)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	if _, err := db.Exec(ctx,
		`INSERT INTO `+table+`(application_id, details) VALUES ($1, $2)`,
		app.ID, details,
	); err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// ListByEvent returns an event's applications, newest first.
func (r *ApplicationRepo) ListByEvent(ctx context.Context, eventID int64) ([]domain.Application, error) {
	const op = "postgres.ApplicationRepo.ListByEvent"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, event_id, role, name, email, created_at
		 FROM applications
		 WHERE event_id = $1
		 ORDER BY created_at DESC`,
		eventID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.EventID, &app.Role, &app.Name, &app.Email, &app.CreatedAt,
		); err != nil {
			return nil, wrapDBErr(op, err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return apps, nil
}
