package postgres_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/internal/storefront/store/drivers/postgres"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*postgres.Store, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})

	return postgres.New(db), mock
}

var issueRowColumns = []string{"id", "fecha_creacion", "data", "issue_id"}

func TestCreateIssueRequest(t *testing.T) {
	t.Parallel()
	st, mock := newMockStore(t)

	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	payload := `{"type":"articulo","id":3,"subject":"s","description":"d"}`

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO issue_request (fecha_creacion, data)")).
		WithArgs(created, payload).
		WillReturnRows(sqlmock.NewRows(issueRowColumns).AddRow(int64(11), created, []byte(payload), nil))

	req, err := st.IssueRequests().CreateIssueRequest(context.Background(), domain.IssueRequest{
		CreatedAt: created,
		Data: domain.IssuePayload{
			Type:        domain.KindArticle,
			ID:          3,
			Subject:     "s",
			Description: "d",
		},
	})
	require.NoError(t, err)
	require.Equal(t, int64(11), req.ID)
	require.Equal(t, "s", req.Data.Subject)
	require.Nil(t, req.ExternalID)
}

func TestCreateIssueLinkPicksTable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		target domain.IssueTarget
		table  string
	}{
		{domain.ArticleTarget{ArticleID: 1}, "issue_request_articulos (issue_request_id, articulo_id)"},
		{domain.CustomerTarget{CustomerID: 1}, "issue_request_clientes (issue_request_id, cliente_id)"},
		{domain.OrderTarget{OrderID: 1}, "issue_request_pedidos (issue_request_id, pedido_id)"},
	}

	for _, tc := range cases {
		t.Run(string(tc.target.Kind()), func(t *testing.T) {
			t.Parallel()
			st, mock := newMockStore(t)

			mock.ExpectExec(regexp.QuoteMeta("INSERT INTO " + tc.table)).
				WithArgs(int64(9), int64(1)).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, st.IssueRequests().CreateIssueLink(context.Background(), 9, tc.target))
		})
	}
}

func TestListIssueRequestsByTargetOrdersNewestFirst(t *testing.T) {
	t.Parallel()
	st, mock := newMockStore(t)

	t3 := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
	t2 := t3.Add(-24 * time.Hour)
	external := int64(55)

	mock.ExpectQuery(`issue_request_clientes WHERE cliente_id = \$1\)\s+ORDER BY fecha_creacion DESC, id DESC`).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(issueRowColumns).
			AddRow(int64(2), t3, []byte(`{"type":"cliente","id":4,"subject":"b","description":"x"}`), external).
			AddRow(int64(1), t2, []byte(`{"type":"cliente","id":4,"subject":"a","description":"x"}`), nil))

	history, err := st.IssueRequests().ListIssueRequestsByTarget(context.Background(), domain.CustomerTarget{CustomerID: 4})
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, int64(2), history[0].ID)
	require.Equal(t, int64(55), *history[0].ExternalID)
	require.Nil(t, history[1].ExternalID)
}

func TestSetExternalIDMissingRow(t *testing.T) {
	t.Parallel()
	st, mock := newMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE issue_request SET issue_id = $1 WHERE id = $2")).
		WithArgs(int64(100), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := st.IssueRequests().SetExternalID(context.Background(), 1, 100)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestCustomerErrors(t *testing.T) {
	t.Parallel()

	t.Run("no rows is not found", func(t *testing.T) {
		t.Parallel()
		st, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("FROM clientes WHERE user_id = $1")).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := st.Customers().GetCustomerByUserID(context.Background(), 9)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation is already exists", func(t *testing.T) {
		t.Parallel()
		st, mock := newMockStore(t)

		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO clientes")).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "clientes_user_id_key"})

		_, err := st.Customers().CreateCustomer(context.Background(), domain.Customer{
			UserID: 9,
			Name:   "Ana",
			Email:  "ana@example.com",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestTargetExists(t *testing.T) {
	t.Parallel()
	st, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (SELECT 1 FROM pedidos WHERE id = $1)")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	ok, err := st.IssueRequests().TargetExists(context.Background(), domain.OrderTarget{OrderID: 3})
	require.NoError(t, err)
	require.True(t, ok)
}
