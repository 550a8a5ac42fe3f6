package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/httpx"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

type AuthHandler struct {
	Exchanger CodeExchanger
}

// HandleStatus confirms that the bearer token is valid.
//
//	@Summary		Check authentication
//	@Description	Succeeds when the bearer token resolves to a user profile.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	shopsdk.AuthStatusResponse
//	@Failure		401	{object}	shopsdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		503	{object}	shopsdk.ErrorResponse	"Identity provider or session cache unavailable"
//	@Router			/auth [get].
func (h *AuthHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, shopsdk.AuthStatusResponse{Status: "success"})
}

// HandleCallback exchanges the authorization code from the login redirect.
//
//	@Summary		Exchange authorization code
//	@Description	Trades the code returned by the identity provider for an access token.
//	@Tags			Auth
//	@Produce		json
//	@Param			code	path		string	true	"Authorization code"
//	@Success		200		{object}	shopsdk.TokenResponse
//	@Failure		400		{object}	shopsdk.ErrorResponse	"Missing code"
//	@Failure		401		{object}	shopsdk.ErrorResponse	"Code rejected by the identity provider"
//	@Failure		503		{object}	shopsdk.ErrorResponse	"Identity provider unavailable"
//	@Router			/authback/{code} [get].
func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(r.PathValue("code"))
	if code == "" {
		writeError(w, r, fmt.Errorf("%w: code is required", domain.ErrInvalidInput))
		return
	}

	tok, err := h.Exchanger.ExchangeCode(r.Context(), code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, shopsdk.TokenResponse{
		AccessToken: tok.AccessToken,
		TokenType:   tok.TokenType,
		ExpiresIn:   tok.ExpiresIn,
	})
}
