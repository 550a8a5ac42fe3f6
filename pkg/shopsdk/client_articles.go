package shopsdk

import (
	"context"
	"fmt"
	"net/http"
)

func (s *Session) ListArticles(ctx context.Context) ([]Article, error) {
	resp, err := s.do(ctx, http.MethodGet, "/v1/articulos", nil)
	if err != nil {
		return nil, err
	}

	var list ListArticlesResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Articles, nil
}

func (s *Session) GetArticle(ctx context.Context, id int64) (*Article, error) {
	resp, err := s.do(ctx, http.MethodGet, fmt.Sprintf("/v1/articulo/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var article Article
	if err := decodeJSON(resp, &article, http.StatusOK); err != nil {
		return nil, err
	}
	return &article, nil
}

// CreateArticle requires the admin role. req.ID must be 0.
func (s *Session) CreateArticle(ctx context.Context, req ArticleRequest) (*Article, error) {
	resp, err := s.do(ctx, http.MethodPost, "/v1/articulo", req)
	if err != nil {
		return nil, err
	}

	var article Article
	if err := decodeJSON(resp, &article, http.StatusCreated); err != nil {
		return nil, err
	}
	return &article, nil
}

// UpdateArticle requires the admin role. req.ID is set to id before sending.
func (s *Session) UpdateArticle(ctx context.Context, id int64, req ArticleRequest) (*Article, error) {
	req.ID = id
	resp, err := s.do(ctx, http.MethodPut, fmt.Sprintf("/v1/articulo/%d", id), req)
	if err != nil {
		return nil, err
	}

	var article Article
	if err := decodeJSON(resp, &article, http.StatusOK); err != nil {
		return nil, err
	}
	return &article, nil
}
