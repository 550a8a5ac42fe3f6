package http

import (
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

type ProfilesHandler struct {
	ProfileService  *service.ProfileService
	CustomerService *service.CustomerService
}

// HandleGet returns the aggregate profile of a user.
//
//	@Summary		Get aggregate profile
//	@Description	Returns the customer record, corporate directory entry and issue history of a user.
//	@Description	Callers may read their own profile; admins may read any.
//	@Tags			Profiles
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	path		int	true	"Identity provider user id"
//	@Success		200		{object}	shopsdk.ProfileResponse
//	@Failure		400		{object}	shopsdk.ErrorResponse	"Malformed user id"
//	@Failure		401		{object}	shopsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403		{object}	shopsdk.ErrorResponse	"Not the owner and not an admin"
//	@Failure		424		{object}	shopsdk.ErrorResponse	"Corporate directory failed"
//	@Failure		500		{object}	shopsdk.ErrorResponse	"Internal server error"
//	@Router			/v1/profile/{user_id} [get].
func (h *ProfilesHandler) HandleGet(w http.ResponseWriter, r *http.Request, c domain.Caller) {
	userID, err := pathInt64(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	agg, err := h.ProfileService.GetAggregateProfile(r.Context(), c.Profile, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, toProfile(agg))
}

// HandleList returns every customer.
//
//	@Summary		List customers
//	@Description	Returns all customer records. Admin only.
//	@Tags			Profiles
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shopsdk.ListCustomersResponse
//	@Failure		401	{object}	shopsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403	{object}	shopsdk.ErrorResponse	"Admin role required"
//	@Router			/v1/profiles [get].
func (h *ProfilesHandler) HandleList(w http.ResponseWriter, r *http.Request, c domain.Caller) {
	list, err := h.CustomerService.ListCustomers(r.Context(), c.Profile)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]shopsdk.Customer, 0, len(list))
	for _, cust := range list {
		out = append(out, toCustomer(cust))
	}
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, shopsdk.ListCustomersResponse{Customers: out})
}

// HandleCreate registers a customer record.
//
//	@Summary		Create customer
//	@Description	Creates the customer record for user_id. Callers may only create their own unless admin.
//	@Tags			Profiles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.CustomerRequest	true	"Customer details"
//	@Success		201		{object}	shopsdk.Customer
//	@Failure		400		{object}	shopsdk.ErrorResponse	"Invalid body or duplicate customer"
//	@Failure		401		{object}	shopsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403		{object}	shopsdk.ErrorResponse	"Not the owner and not an admin"
//	@Router			/v1/profile [post].
func (h *ProfilesHandler) HandleCreate(w http.ResponseWriter, r *http.Request, c domain.Caller) {
	var req shopsdk.CustomerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.CustomerService.CreateCustomer(r.Context(), c.Profile, fromCustomerRequest(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toCustomer(created))
}

// HandleUpdate overwrites a customer record.
//
//	@Summary		Update customer
//	@Description	Replaces the contact details of the customer owned by user_id.
//	@Tags			Profiles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		int						true	"Identity provider user id"
//	@Param			request	body		shopsdk.CustomerRequest	true	"Customer details"
//	@Success		200		{object}	shopsdk.Customer
//	@Failure		400		{object}	shopsdk.ErrorResponse	"Invalid body"
//	@Failure		401		{object}	shopsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		403		{object}	shopsdk.ErrorResponse	"Not the owner and not an admin"
//	@Failure		404		{object}	shopsdk.ErrorResponse	"No customer for user_id"
//	@Router			/v1/profile/{user_id} [put].
func (h *ProfilesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request, c domain.Caller) {
	userID, err := pathInt64(r, "user_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req shopsdk.CustomerRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.CustomerService.UpdateCustomer(r.Context(), c.Profile, userID, fromCustomerRequest(req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toCustomer(updated))
}
