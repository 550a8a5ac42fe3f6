package http

import (
	"net/http"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/service"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

type ArticlesHandler struct {
	ArticleService *service.ArticleService
}

// HandleList returns the catalogue.
//
//	@Summary		List articles
//	@Tags			Articles
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shopsdk.ListArticlesResponse
//	@Failure		401	{object}	shopsdk.ErrorResponse	"Invalid or missing access token"
//	@Router			/v1/articulos [get].
func (h *ArticlesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	list, err := h.ArticleService.ListArticles(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]shopsdk.Article, 0, len(list))
	for _, a := range list {
		out = append(out, toArticle(a))
	}
	httpx.WriteJSON(w, http.StatusOK, shopsdk.ListArticlesResponse{Articles: out})
}

// HandleGet returns one article.
//
//	@Summary		Get article
//	@Tags			Articles
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Article id"
//	@Success		200	{object}	shopsdk.Article
//	@Failure		400	{object}	shopsdk.ErrorResponse	"Malformed id"
//	@Failure		404	{object}	shopsdk.ErrorResponse	"No such article"
//	@Router			/v1/articulo/{id} [get].
func (h *ArticlesHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	a, err := h.ArticleService.GetArticle(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toArticle(a))
}

// HandleCreate adds an article to the catalogue.
//
//	@Summary		Create article
//	@Description	Admin only. The body id must be 0 or omitted.
//	@Tags			Articles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		shopsdk.ArticleRequest	true	"Article"
//	@Success		201		{object}	shopsdk.Article
//	@Failure		400		{object}	shopsdk.ErrorResponse	"Invalid body"
//	@Failure		403		{object}	shopsdk.ErrorResponse	"Admin role required"
//	@Router			/v1/articulo [post].
func (h *ArticlesHandler) HandleCreate(w http.ResponseWriter, r *http.Request, c domain.Caller) {
	var req shopsdk.ArticleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	created, err := h.ArticleService.CreateArticle(r.Context(), c.Profile, fromArticleRequest(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toArticle(created))
}

// HandleUpdate replaces an article.
//
//	@Summary		Update article
//	@Description	Admin only. The body id must equal the path id.
//	@Tags			Articles
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Article id"
//	@Param			request	body		shopsdk.ArticleRequest	true	"Article"
//	@Success		200		{object}	shopsdk.Article
//	@Failure		400		{object}	shopsdk.ErrorResponse	"Invalid body"
//	@Failure		403		{object}	shopsdk.ErrorResponse	"Admin role required"
//	@Failure		404		{object}	shopsdk.ErrorResponse	"No such article"
//	@Router			/v1/articulo/{id} [put].
func (h *ArticlesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request, c domain.Caller) {
	id, err := pathInt64(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req shopsdk.ArticleRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	updated, err := h.ArticleService.UpdateArticle(r.Context(), c.Profile, id, fromArticleRequest(req))
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toArticle(updated))
}
