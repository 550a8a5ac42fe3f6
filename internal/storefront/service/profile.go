package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/pkg/slogx"
)

// CorpDirectory looks people up in the corporate directory. found is false
// when the directory has no record.
type CorpDirectory interface {
	Person(ctx context.Context, userID int64) (person domain.CorpPerson, found bool, err error)
}

// ProfileService assembles the aggregate profile of a user from the local
// store and the corporate directory.
type ProfileService struct {
	Store store.Store
	Corp  CorpDirectory
}

// GetAggregateProfile collects the customer record, the corp person and the
// issue history of targetUserID.
//
// A missing customer or corp person leaves that part nil. Any other store
// error is domain.ErrInternal and any corp failure is
// domain.ErrFailedDependency; both abort the whole call. The history holds
// the issues raised against the user's customer record, newest first.
func (s *ProfileService) GetAggregateProfile(
	ctx context.Context,
	requester domain.Profile,
	targetUserID int64,
) (domain.AggregateProfile, error) {
	if err := RequireOwner(requester, targetUserID); err != nil {
		return domain.AggregateProfile{}, err
	}

	log := slogx.FromContext(ctx).With("target_user_id", targetUserID)
	agg := domain.AggregateProfile{
		UserID:       targetUserID,
		IssueHistory: []domain.IssueRequest{},
	}

	customer, err := s.Store.Customers().GetCustomerByUserID(ctx, targetUserID)
	switch {
	case err == nil:
		agg.Customer = &customer
	case errors.Is(err, store.ErrNotFound):
		log.Debug("no customer record for user")
	default:
		return domain.AggregateProfile{}, fmt.Errorf("%w: load customer: %v", domain.ErrInternal, err)
	}

	person, found, err := s.Corp.Person(ctx, targetUserID)
	if err != nil {
		log.Warn("corp directory lookup failed", "err", err)
		return domain.AggregateProfile{}, fmt.Errorf("%w: corp directory: %v", domain.ErrFailedDependency, err)
	}
	if found {
		agg.CorpPerson = &person
	}

	if agg.Customer != nil {
		history, err := s.Store.IssueRequests().ListIssueRequestsByTarget(ctx,
			domain.CustomerTarget{CustomerID: agg.Customer.ID})
		if err != nil {
			return domain.AggregateProfile{}, fmt.Errorf("%w: load issue history: %v", domain.ErrInternal, err)
		}
		agg.IssueHistory = history
	}

	return agg, nil
}
