package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/internal/storefront/upstream/ticketing"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// TicketCreator opens a ticket as the user owning token and returns its id.
type TicketCreator interface {
	Create(ctx context.Context, token domain.UserToken, t ticketing.Ticket) (int64, error)
}

// IssueService records issue requests locally and mirrors them as tickets.
type IssueService struct {
	Store   store.Store
	Tickets TicketCreator

	// PublicURL is the storefront's public base; tickets link back to
	// PublicURL/<type>/<id>.
	PublicURL string
	ProjectID int64
	TrackerID int64

	Now func() time.Time
}

type CreateIssueInput struct {
	Type        string
	TargetID    int64
	Subject     string
	Description string
}

// CreateIssue records an issue against a record and opens a ticket for it.
//
// The steps run in order: validate, compose the subject, insert the request
// and its link (committed together), call the tracker, store the tracker's
// id. Validation failures write nothing. When the tracker call fails the
// committed request and link stay in place, their issue_id stays NULL, and
// the returned error wraps domain.ErrUnavailable. When the tracker succeeded
// but its id cannot be stored, the error wraps domain.ErrInternal.
func (s *IssueService) CreateIssue(ctx context.Context, caller domain.Caller, in CreateIssueInput) (domain.IssueRequest, error) {
	target, err := domain.ParseIssueTarget(in.Type, in.TargetID)
	if err != nil {
		return domain.IssueRequest{}, err
	}
	subject := strings.TrimSpace(in.Subject)
	description := strings.TrimSpace(in.Description)
	if subject == "" {
		return domain.IssueRequest{}, fmt.Errorf("%w: subject is required", domain.ErrInvalidInput)
	}
	if description == "" {
		return domain.IssueRequest{}, fmt.Errorf("%w: description is required", domain.ErrInvalidInput)
	}
	if err := s.checkTarget(ctx, caller.Profile, target); err != nil {
		return domain.IssueRequest{}, err
	}

	log := slogx.FromContext(ctx).With(
		"target_type", string(target.Kind()),
		"target_id", target.TargetID(),
		"user_id", caller.Profile.UserID,
	)

	req := domain.IssueRequest{
		CreatedAt: s.now(),
		Data: domain.IssuePayload{
			Type:        target.Kind(),
			ID:          target.TargetID(),
			Subject:     s.composeSubject(subject, target),
			Description: description,
		},
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		created, err := tx.IssueRequests().CreateIssueRequest(ctx, req)
		if err != nil {
			return fmt.Errorf("insert issue request: %w", err)
		}
		if created.ID == 0 {
			return errors.New("store returned issue request id 0")
		}
		if err := tx.IssueRequests().CreateIssueLink(ctx, created.ID, target); err != nil {
			return fmt.Errorf("link issue request %d: %w", created.ID, err)
		}
		req = created
		return nil
	})
	if err != nil {
		return domain.IssueRequest{}, fmt.Errorf("%w: %v", domain.ErrInternal, err)
	}
	log = log.With("issue_request_id", req.ID)

	externalID, err := s.Tickets.Create(ctx, caller.Token, ticketing.Ticket{
		Subject:     req.Data.Subject,
		Description: req.Data.Description,
		ProjectID:   s.ProjectID,
		TrackerID:   s.TrackerID,
	})
	if err != nil {
		// The local request is kept; its NULL issue_id marks it as not mirrored.
		log.Warn("ticket creation failed, issue request kept without ticket", "err", err)
		if errors.Is(err, domain.ErrUnavailable) {
			return req, fmt.Errorf("create ticket for issue request %d: %w", req.ID, err)
		}
		return req, fmt.Errorf("%w: create ticket for issue request %d: %v", domain.ErrUnavailable, req.ID, err)
	}

	if err := s.Store.IssueRequests().SetExternalID(ctx, req.ID, externalID); err != nil {
		log.Error("ticket created but its id could not be stored", "issue_id", externalID, "err", err)
		return req, fmt.Errorf("%w: store ticket id %d for issue request %d: %v",
			domain.ErrInternal, externalID, req.ID, err)
	}
	req.ExternalID = &externalID

	log.Info("issue created", "issue_id", externalID)
	return req, nil
}

// ListIssues returns the issues raised against target, newest first.
func (s *IssueService) ListIssues(ctx context.Context, requester domain.Profile, target domain.IssueTarget) ([]domain.IssueRequest, error) {
	if err := s.checkTarget(ctx, requester, target); err != nil {
		return nil, err
	}

	out, err := s.Store.IssueRequests().ListIssueRequestsByTarget(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("%w: list issues: %v", domain.ErrInternal, err)
	}
	return out, nil
}

// checkTarget verifies target exists and, for customer targets, that
// requester owns that customer record or is an admin.
func (s *IssueService) checkTarget(ctx context.Context, requester domain.Profile, target domain.IssueTarget) error {
	if ct, ok := target.(domain.CustomerTarget); ok {
		c, err := s.Store.Customers().GetCustomerByID(ctx, ct.CustomerID)
		if err != nil {
			return storeErr("load customer", err)
		}
		return RequireOwner(requester, c.UserID)
	}

	exists, err := s.Store.IssueRequests().TargetExists(ctx, target)
	if err != nil {
		return fmt.Errorf("%w: check issue target: %v", domain.ErrInternal, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s %d", domain.ErrNotFound, target.Kind(), target.TargetID())
	}
	return nil
}

func (s *IssueService) composeSubject(subject string, target domain.IssueTarget) string {
	base := strings.TrimSuffix(s.PublicURL, "/")
	return fmt.Sprintf("%s (%s/%s/%d)", subject, base, target.Kind(), target.TargetID())
}

func (s *IssueService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
