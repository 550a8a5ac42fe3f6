package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

type customersRepo struct {
	db  dbtx
	now func() time.Time
}

const customerColumns = `id, user_id, nombre, email, telefono, direccion, fecha_registro`

func (r *customersRepo) GetCustomerByUserID(ctx context.Context, userID int64) (domain.Customer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM clientes WHERE user_id = ?`, userID)
	c, err := scanCustomer(row)
	if err != nil {
		return domain.Customer{}, mapNotFound(err)
	}
	return c, nil
}

func (r *customersRepo) GetCustomerByID(ctx context.Context, id int64) (domain.Customer, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+customerColumns+` FROM clientes WHERE id = ?`, id)
	c, err := scanCustomer(row)
	if err != nil {
		return domain.Customer{}, mapNotFound(err)
	}
	return c, nil
}

func (r *customersRepo) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM clientes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *customersRepo) CreateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if c.RegisteredAt.IsZero() {
		c.RegisteredAt = r.now()
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO clientes (user_id, nombre, email, telefono, direccion, fecha_registro)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+customerColumns,
		c.UserID, c.Name, c.Email,
		mapOptionalString(c.Phone), mapOptionalString(c.Address),
		formatTime(c.RegisteredAt),
	)
	created, err := scanCustomer(row)
	if err != nil {
		return domain.Customer{}, mapConstraint(err)
	}
	return created, nil
}

func (r *customersRepo) UpdateCustomerByUserID(
	ctx context.Context,
	userID int64,
	c domain.Customer,
) (domain.Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE clientes
		SET nombre = ?, email = ?, telefono = ?, direccion = ?
		WHERE user_id = ?
		RETURNING `+customerColumns,
		c.Name, c.Email,
		mapOptionalString(c.Phone), mapOptionalString(c.Address),
		userID,
	)
	updated, err := scanCustomer(row)
	if err != nil {
		return domain.Customer{}, mapConstraint(mapNotFound(err))
	}
	return updated, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (domain.Customer, error) {
	var (
		c          domain.Customer
		phone      sql.NullString
		address    sql.NullString
		registered string
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &phone, &address, &registered); err != nil {
		return domain.Customer{}, err
	}

	t, err := parseTime(registered)
	if err != nil {
		return domain.Customer{}, err
	}
	c.Phone = mapNullString(phone)
	c.Address = mapNullString(address)
	c.RegisteredAt = t
	return c, nil
}
