package shopsdk

import "time"

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ============================================================================
// Health
// ============================================================================

type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency probed by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// ============================================================================
// Authentication
// ============================================================================

// AuthStatusResponse is returned by GET /auth when the token is valid.
type AuthStatusResponse struct {
	Status string `json:"status"`
}

// TokenResponse is the result of exchanging an authorization code.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// ============================================================================
// Customers and profiles
// ============================================================================

type Customer struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"user_id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Telefono      *string   `json:"telefono"`
	Direccion     *string   `json:"direccion"`
	FechaRegistro time.Time `json:"fecha_registro"`
}

// CustomerRequest is the body of POST /v1/profile and PUT /v1/profile/{user_id}.
type CustomerRequest struct {
	UserID    int64   `json:"user_id"`
	Nombre    string  `json:"nombre"`
	Email     string  `json:"email"`
	Telefono  *string `json:"telefono,omitempty"`
	Direccion *string `json:"direccion,omitempty"`
}

type CorpPerson struct {
	Person          CorpPersonData  `json:"person"`
	Apps            []CorpApp       `json:"lapp"`
	PersonAppGrants []CorpPersonApp `json:"lpersonapp"`
}

type CorpPersonData struct {
	ID        int64  `json:"id"`
	DNI       string `json:"dni"`
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Email     string `json:"email"`
	Telefono  string `json:"telefono"`
}

type CorpApp struct {
	ID        int64  `json:"id"`
	ClientID  string `json:"client_id"`
	ClientURL string `json:"client_url"`
}

type CorpPersonApp struct {
	ID           int64  `json:"id"`
	PersonID     int64  `json:"person_id"`
	AuthClientID int64  `json:"auth_client_id"`
	Profile      string `json:"profile"`
}

// ProfileResponse is the aggregated view of a user. Customer and CorpPerson
// are null when the record does not exist.
type ProfileResponse struct {
	UserID       int64          `json:"user_id"`
	Customer     *Customer      `json:"cliente"`
	CorpPerson   *CorpPerson    `json:"corp"`
	IssueHistory []IssueRequest `json:"issues"`
}

type ListCustomersResponse struct {
	Customers []Customer `json:"clientes"`
}

// ============================================================================
// Articles
// ============================================================================

type Article struct {
	ID            int64     `json:"id"`
	Nombre        string    `json:"nombre"`
	Descripcion   *string   `json:"descripcion"`
	Precio        int64     `json:"precio"`
	Stock         int64     `json:"stock"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// ArticleRequest is the body of POST /v1/articulo (ID must be 0) and
// PUT /v1/articulo/{id} (ID must match the path).
type ArticleRequest struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion *string `json:"descripcion,omitempty"`
	Precio      int64   `json:"precio"`
	Stock       int64   `json:"stock"`
}

type ListArticlesResponse struct {
	Articles []Article `json:"articulos"`
}

// ============================================================================
// Issues
// ============================================================================

// CreateIssueRequest is the body of POST /v1/issues. Type is one of
// "articulo", "cliente" or "pedido".
type CreateIssueRequest struct {
	Type        string `json:"type"`
	ID          int64  `json:"id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

type IssueData struct {
	Type        string `json:"type"`
	ID          int64  `json:"id"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

// IssueRequest is a locally recorded issue. IssueID is the ticketing
// system's id, null until the ticket was confirmed.
type IssueRequest struct {
	ID            int64     `json:"id"`
	FechaCreacion time.Time `json:"fecha_creacion"`
	Data          IssueData `json:"data"`
	IssueID       *int64    `json:"issue_id"`
}

type ListIssuesResponse struct {
	Issues []IssueRequest `json:"issues"`
}
