package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
)

type ArticleService struct {
	Store store.Store
}

func (s *ArticleService) ListArticles(ctx context.Context) ([]domain.Article, error) {
	out, err := s.Store.Articles().ListArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list articles: %v", domain.ErrInternal, err)
	}
	return out, nil
}

func (s *ArticleService) GetArticle(ctx context.Context, id int64) (domain.Article, error) {
	if id <= 0 {
		return domain.Article{}, fmt.Errorf("%w: article id must be positive", domain.ErrInvalidInput)
	}
	a, err := s.Store.Articles().GetArticleByID(ctx, id)
	if err != nil {
		return domain.Article{}, storeErr("load article", err)
	}
	return a, nil
}

// CreateArticle adds a new article. Admin only; the id is assigned by the
// store so a non-zero a.ID is rejected.
func (s *ArticleService) CreateArticle(ctx context.Context, requester domain.Profile, a domain.Article) (domain.Article, error) {
	if err := RequireAdmin(requester); err != nil {
		return domain.Article{}, err
	}
	if a.ID != 0 {
		return domain.Article{}, fmt.Errorf("%w: id must be 0 when creating", domain.ErrInvalidInput)
	}
	a, err := normalizeArticle(a)
	if err != nil {
		return domain.Article{}, err
	}

	created, err := s.Store.Articles().CreateArticle(ctx, a)
	if err != nil {
		return domain.Article{}, storeErr("create article", err)
	}
	return created, nil
}

// UpdateArticle replaces article id. Admin only; a.ID must equal id.
func (s *ArticleService) UpdateArticle(ctx context.Context, requester domain.Profile, id int64, a domain.Article) (domain.Article, error) {
	if err := RequireAdmin(requester); err != nil {
		return domain.Article{}, err
	}
	if id == 0 || a.ID != id {
		return domain.Article{}, fmt.Errorf("%w: id must be non-zero and match the path", domain.ErrInvalidInput)
	}
	a, err := normalizeArticle(a)
	if err != nil {
		return domain.Article{}, err
	}

	updated, err := s.Store.Articles().UpdateArticle(ctx, a)
	if err != nil {
		return domain.Article{}, storeErr("update article", err)
	}
	return updated, nil
}

func normalizeArticle(a domain.Article) (domain.Article, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return a, fmt.Errorf("%w: nombre is required", domain.ErrInvalidInput)
	}
	if a.Price < 0 || a.Stock < 0 {
		return a, fmt.Errorf("%w: precio and stock must not be negative", domain.ErrInvalidInput)
	}
	a.Description = trimOptional(a.Description)
	return a, nil
}
