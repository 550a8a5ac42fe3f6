package domain

// CorpPerson is the denormalised person record served by the corporate
// directory. It is fetched per request and never stored locally.
type CorpPerson struct {
	Person          CorpPersonData  `json:"person"`
	Apps            []CorpApp       `json:"lapp"`
	PersonAppGrants []CorpPersonApp `json:"lpersonapp"`
}

type CorpPersonData struct {
	ID        int64  `json:"id"`
	DNI       string `json:"dni"`
	Name      string `json:"nombre"`
	Surnames  string `json:"apellidos"`
	Email     string `json:"email"`
	Telephone string `json:"telefono"`
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

// AggregateProfile is the composite view returned for a user. Customer and
// CorpPerson are nil when their source has no record for the user.
type AggregateProfile struct {
	UserID       int64
	Customer     *Customer
	CorpPerson   *CorpPerson
	IssueHistory []IssueRequest
}
