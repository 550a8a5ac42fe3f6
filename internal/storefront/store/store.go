package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface implemented by the sqlite and
// postgres drivers. Repositories hang off it so a transaction can hand out
// the same repositories bound to the transaction.
type Store interface {
	Customers() Customers
	Articles() Articles
	IssueRequests() IssueRequests

	ApplyMigrations() error

	// Tx starts a read/write transaction. The caller MUST Commit or Rollback.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error
	Ping(ctx context.Context) error
}

// Tx is a transactional store. Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Customers interface {
	// GetCustomerByUserID looks a customer up by identity provider user id.
	GetCustomerByUserID(ctx context.Context, userID int64) (domain.Customer, error)

	GetCustomerByID(ctx context.Context, id int64) (domain.Customer, error)

	// ListCustomers returns every customer ordered by id.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// CreateCustomer inserts c and returns the stored row. A duplicate
	// user_id or email yields ErrAlreadyExists.
	CreateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error)

	// UpdateCustomerByUserID overwrites the mutable fields of the customer
	// owned by userID.
	UpdateCustomerByUserID(ctx context.Context, userID int64, c domain.Customer) (domain.Customer, error)
}

type Articles interface {
	GetArticleByID(ctx context.Context, id int64) (domain.Article, error)
	ListArticles(ctx context.Context) ([]domain.Article, error)
	CreateArticle(ctx context.Context, a domain.Article) (domain.Article, error)
	UpdateArticle(ctx context.Context, a domain.Article) (domain.Article, error)
}

type IssueRequests interface {
	// CreateIssueRequest inserts the payload and returns the row with the
	// id assigned by the database.
	CreateIssueRequest(ctx context.Context, r domain.IssueRequest) (domain.IssueRequest, error)

	// CreateIssueLink joins an existing issue request to its target. The
	// table is chosen by the target kind.
	CreateIssueLink(ctx context.Context, issueRequestID int64, target domain.IssueTarget) error

	// SetExternalID records the ticketing system's id for the request.
	SetExternalID(ctx context.Context, issueRequestID, externalID int64) error

	GetIssueRequestByID(ctx context.Context, id int64) (domain.IssueRequest, error)

	// TargetExists reports whether the record target refers to is present.
	TargetExists(ctx context.Context, target domain.IssueTarget) (bool, error)

	// ListIssueRequestsByTarget returns requests linked to target, newest
	// first (created_at DESC, id DESC).
	ListIssueRequestsByTarget(ctx context.Context, target domain.IssueTarget) ([]domain.IssueRequest, error)
}
