package repository

import (
	"context"

	"github.com/grabbix/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository,
// used when DATABASE_URL is set.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contacts row and populates c.ID from the database
// RETURNING clause. Optional fields are stored as NULL when empty.
func (r *PgContactRepository) Save(ctx context.Context, c *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts
		   (name, email, phone, company, location, space_type, customer_size, message, created_at)
		 VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''), $9)
		 RETURNING id`,
		c.Name, c.Email, c.Phone, c.Company, c.Location, c.SpaceType, c.CustomerSize, c.Message, c.CreatedAt,
	).Scan(&c.ID)
}

// List returns all contacts in insertion order.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email,
		        COALESCE(phone, ''), COALESCE(company, ''), COALESCE(location, ''),
		        COALESCE(space_type, ''), COALESCE(customer_size, ''), COALESCE(message, ''),
		        created_at
		 FROM contacts
		 ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company, &c.Location,
			&c.SpaceType, &c.CustomerSize, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// Ping verifies database connectivity.
func (r *PgContactRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
