package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
	"github.com/aussiebroadwan/storefront/internal/storefront/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func ptr[T any](v T) *T { return &v }

func TestCustomers(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	created, err := st.Customers().CreateCustomer(ctx, domain.Customer{
		UserID: 42,
		Name:   "Ana",
		Email:  "ana@example.com",
		Phone:  ptr("600000000"),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.RegisteredAt.IsZero())
	require.Nil(t, created.Address)

	t.Run("get by user id", func(t *testing.T) {
		got, err := st.Customers().GetCustomerByUserID(ctx, 42)
		require.NoError(t, err)
		require.Equal(t, created.ID, got.ID)
		require.Equal(t, "600000000", *got.Phone)
	})

	t.Run("missing user id", func(t *testing.T) {
		_, err := st.Customers().GetCustomerByUserID(ctx, 7)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate user id", func(t *testing.T) {
		_, err := st.Customers().CreateCustomer(ctx, domain.Customer{
			UserID: 42,
			Name:   "Other",
			Email:  "other@example.com",
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("update by user id", func(t *testing.T) {
		updated, err := st.Customers().UpdateCustomerByUserID(ctx, 42, domain.Customer{
			Name:    "Ana María",
			Email:   "ana@example.com",
			Address: ptr("Calle Mayor 1"),
		})
		require.NoError(t, err)
		require.Equal(t, "Ana María", updated.Name)
		require.Nil(t, updated.Phone)
		require.Equal(t, "Calle Mayor 1", *updated.Address)
		require.Equal(t, created.RegisteredAt, updated.RegisteredAt)
	})

	t.Run("update missing", func(t *testing.T) {
		_, err := st.Customers().UpdateCustomerByUserID(ctx, 999, domain.Customer{Name: "x", Email: "x@example.com"})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestArticles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	a, err := st.Articles().CreateArticle(ctx, domain.Article{Name: "Mesa", Price: 12000, Stock: 3})
	require.NoError(t, err)
	require.NotZero(t, a.ID)

	b, err := st.Articles().CreateArticle(ctx, domain.Article{Name: "Silla", Description: ptr("roble"), Price: 4500})
	require.NoError(t, err)

	list, err := st.Articles().ListArticles(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, a.ID, list[0].ID)
	require.Equal(t, "roble", *list[1].Description)

	b.Stock = 10
	updated, err := st.Articles().UpdateArticle(ctx, b)
	require.NoError(t, err)
	require.Equal(t, int64(10), updated.Stock)

	_, err = st.Articles().UpdateArticle(ctx, domain.Article{ID: 999, Name: "x"})
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = st.Articles().GetArticleByID(ctx, 999)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestIssueRequestsNewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	article, err := st.Articles().CreateArticle(ctx, domain.Article{Name: "Mesa", Price: 100})
	require.NoError(t, err)
	target := domain.ArticleTarget{ArticleID: article.ID}

	t1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Second)
	t3 := t2.Add(500 * time.Millisecond)

	// Insert out of order to prove ordering comes from the timestamp.
	var ids = map[time.Time]int64{}
	for _, at := range []time.Time{t2, t3, t1} {
		req, err := st.IssueRequests().CreateIssueRequest(ctx, domain.IssueRequest{
			CreatedAt: at,
			Data: domain.IssuePayload{
				Type:        domain.KindArticle,
				ID:          article.ID,
				Subject:     "broken leg",
				Description: at.String(),
			},
		})
		require.NoError(t, err)
		require.NotZero(t, req.ID)
		require.Nil(t, req.ExternalID)
		require.NoError(t, st.IssueRequests().CreateIssueLink(ctx, req.ID, target))
		ids[at] = req.ID
	}

	history, err := st.IssueRequests().ListIssueRequestsByTarget(ctx, target)
	require.NoError(t, err)
	require.Len(t, history, 3)
	require.Equal(t, []int64{ids[t3], ids[t2], ids[t1]},
		[]int64{history[0].ID, history[1].ID, history[2].ID})
	require.True(t, history[0].CreatedAt.Equal(t3))
	require.Equal(t, domain.KindArticle, history[0].Data.Type)

	t.Run("other targets see nothing", func(t *testing.T) {
		other, err := st.IssueRequests().ListIssueRequestsByTarget(ctx, domain.OrderTarget{OrderID: article.ID})
		require.NoError(t, err)
		require.Empty(t, other)
	})
}

func TestIssueRequestExternalID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	req, err := st.IssueRequests().CreateIssueRequest(ctx, domain.IssueRequest{
		Data: domain.IssuePayload{Type: domain.KindOrder, ID: 1, Subject: "s", Description: "d"},
	})
	require.NoError(t, err)

	require.NoError(t, st.IssueRequests().SetExternalID(ctx, req.ID, 777))

	got, err := st.IssueRequests().GetIssueRequestByID(ctx, req.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ExternalID)
	require.Equal(t, int64(777), *got.ExternalID)

	require.ErrorIs(t, st.IssueRequests().SetExternalID(ctx, 999, 1), store.ErrNotFound)
}

func TestIssueLinkRequiresTarget(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	req, err := st.IssueRequests().CreateIssueRequest(ctx, domain.IssueRequest{
		Data: domain.IssuePayload{Type: domain.KindCustomer, ID: 5, Subject: "s", Description: "d"},
	})
	require.NoError(t, err)

	exists, err := st.IssueRequests().TargetExists(ctx, domain.CustomerTarget{CustomerID: 5})
	require.NoError(t, err)
	require.False(t, exists)

	err = st.IssueRequests().CreateIssueLink(ctx, req.ID, domain.CustomerTarget{CustomerID: 5})
	require.Error(t, err)
}

func TestWithTxRollsBack(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	st := newTestStore(t)

	err := st.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Articles().CreateArticle(ctx, domain.Article{Name: "tmp", Price: 1}); err != nil {
			return err
		}
		return store.ErrAlreadyExists
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	list, err := st.Articles().ListArticles(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
