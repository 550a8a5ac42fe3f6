package http

import (
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

type IssuesHandler struct {
	IssueService *service.IssueService
}

// HandleCreate records an issue and opens a ticket for it.
//
//	@Summary		Report an issue
//	@Description	Stores the issue against an article, customer or order and opens a ticket in the tracker
//	@Description	as the calling user. When the tracker is unreachable the local record is kept and 503 is returned.
//	@Tags			Issues
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.CreateIssueRequest	true	"Issue"
//	@Success		201		{object}	shopsdk.IssueRequest
//	@Failure		400		{object}	shopsdk.ErrorResponse	"Invalid body or unknown target type"
//	@Failure		403		{object}	shopsdk.ErrorResponse	"Customer target owned by someone else"
//	@Failure		404		{object}	shopsdk.ErrorResponse	"Target does not exist"
//	@Failure		503		{object}	shopsdk.ErrorResponse	"Ticket tracker unavailable"
//	@Router			/v1/issues [post].
func (h *IssuesHandler) HandleCreate(w http.ResponseWriter, r *http.Request, c domain.Caller) {
	var req shopsdk.CreateIssueRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.IssueService.CreateIssue(r.Context(), c, service.CreateIssueInput{
		Type:        req.Type,
		TargetID:    req.ID,
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		if created.ID != 0 {
			slogx.FromContext(r.Context()).Warn("issue stored without ticket", "issue_request_id", created.ID)
		}
		writeError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toIssue(created))
}

// HandleList returns the issues raised against a record, newest first.
//
//	@Summary		List issues for a record
//	@Tags			Issues
//	@Security		BearerAuth
//	@Produce		json
//	@Param			type	path		string	true	"Target type"	Enums(articulo, cliente, pedido)
//	@Param			id		path		int		true	"Target id"
//	@Success		200		{object}	shopsdk.ListIssuesResponse
//	@Failure		400		{object}	shopsdk.ErrorResponse	"Unknown target type"
//	@Failure		403		{object}	shopsdk.ErrorResponse	"Customer target owned by someone else"
//	@Failure		404		{object}	shopsdk.ErrorResponse	"Target does not exist"
//	@Router			/v1/issues/{type}/{id} [get].
func (h *IssuesHandler) HandleList(w http.ResponseWriter, r *http.Request, c domain.Caller) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	target, err := domain.ParseIssueTarget(r.PathValue("type"), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.IssueService.ListIssues(r.Context(), c.Profile, target)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, shopsdk.ListIssuesResponse{Issues: toIssues(list)})
}
