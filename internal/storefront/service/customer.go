package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
)

type CustomerService struct {
	Store store.Store
}

// ListCustomers returns every customer. Admin only.
func (s *CustomerService) ListCustomers(ctx context.Context, requester domain.Profile) ([]domain.Customer, error) {
	if err := RequireAdmin(requester); err != nil {
		return nil, err
	}
	out, err := s.Store.Customers().ListCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list customers: %v", domain.ErrInternal, err)
	}
	return out, nil
}

// CreateCustomer registers c. Users may only register themselves.
func (s *CustomerService) CreateCustomer(ctx context.Context, requester domain.Profile, c domain.Customer) (domain.Customer, error) {
	c, err := normalizeCustomer(c)
	if err != nil {
		return domain.Customer{}, err
	}
	if err := RequireOwner(requester, c.UserID); err != nil {
		return domain.Customer{}, err
	}

	c.ID = 0
	created, err := s.Store.Customers().CreateCustomer(ctx, c)
	if err != nil {
		return domain.Customer{}, storeErr("create customer", err)
	}
	return created, nil
}

// UpdateCustomer overwrites the contact details of the customer owned by
// userID. The body's user id, when set, must match.
func (s *CustomerService) UpdateCustomer(
	ctx context.Context,
	requester domain.Profile,
	userID int64,
	c domain.Customer,
) (domain.Customer, error) {
	if c.UserID == 0 {
		c.UserID = userID
	}
	if c.UserID != userID {
		return domain.Customer{}, fmt.Errorf("%w: user_id does not match the path", domain.ErrInvalidInput)
	}
	c, err := normalizeCustomer(c)
	if err != nil {
		return domain.Customer{}, err
	}
	if err := RequireOwner(requester, userID); err != nil {
		return domain.Customer{}, err
	}

	updated, err := s.Store.Customers().UpdateCustomerByUserID(ctx, userID, c)
	if err != nil {
		return domain.Customer{}, storeErr("update customer", err)
	}
	return updated, nil
}

func normalizeCustomer(c domain.Customer) (domain.Customer, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)

	if c.UserID == 0 {
		return c, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}
	if c.Name == "" {
		return c, fmt.Errorf("%w: nombre is required", domain.ErrInvalidInput)
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return c, fmt.Errorf("%w: email is invalid", domain.ErrInvalidInput)
	}
	c.Phone = trimOptional(c.Phone)
	c.Address = trimOptional(c.Address)
	return c, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// storeErr translates store sentinels into domain kinds.
func storeErr(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("%w: %s", domain.ErrNotFound, op)
	case errors.Is(err, store.ErrAlreadyExists):
		return fmt.Errorf("%w: %s: record already exists", domain.ErrInvalidInput, op)
	default:
		return fmt.Errorf("%w: %s: %v", domain.ErrInternal, op, err)
	}
}
