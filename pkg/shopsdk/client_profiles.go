package shopsdk

import (
	"context"
	"fmt"
	"net/http"
)

// GetProfile returns the aggregated profile of userID. Callers may read their
// own profile; admins may read any.
func (s *Session) GetProfile(ctx context.Context, userID int64) (*ProfileResponse, error) {
	resp, err := s.do(ctx, http.MethodGet, fmt.Sprintf("/v1/profile/%d", userID), nil)
	if err != nil {
		return nil, err
	}

	var profile ProfileResponse
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}
	return &profile, nil
}

// ListCustomers returns every customer. Admin only.
func (s *Session) ListCustomers(ctx context.Context) ([]Customer, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/profiles", nil)
	if err != nil {
		return nil, err
	}

	var list ListCustomersResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Customers, nil
}

func (s *Session) CreateCustomer(ctx context.Context, req CustomerRequest) (*Customer, error) {
	resp, err := s.do(ctx, http.MethodPost, "/v1/profile", req)
	if err != nil {
		return nil, err
	}

	var customer Customer
	if err := decodeJSON(resp, &customer, http.StatusCreated); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *Session) UpdateCustomer(ctx context.Context, userID int64, req CustomerRequest) (*Customer, error) {
	resp, err := s.do(ctx, http.MethodPut, fmt.Sprintf("/v1/profile/%d", userID), req)
	if err != nil {
		return nil, err
	}

	var customer Customer
	if err := decodeJSON(resp, &customer, http.StatusOK); err != nil {
		return nil, err
	}
	return &customer, nil
}
