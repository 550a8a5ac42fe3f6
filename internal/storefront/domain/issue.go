package domain

import (
	"fmt"
	"strings"
	"time"
)

// TargetKind names the kind of record an issue request refers to. The string
// values are the ones used on the wire and in the stored payload.
type TargetKind string

const (
	KindArticle  TargetKind = "articulo"
	KindCustomer TargetKind = "cliente"
	KindOrder    TargetKind = "pedido"
)

// IssueTarget is the record an issue request is raised against. It is a closed
// set: ArticleTarget, CustomerTarget and OrderTarget are the only
// implementations.
type IssueTarget interface {
	Kind() TargetKind
	TargetID() int64
	isIssueTarget()
}

// ArticleTarget refers to articulos.id.
type ArticleTarget struct{ ArticleID int64 }

// CustomerTarget refers to clientes.id, the local customer id (not the
// identity provider user id).
type CustomerTarget struct{ CustomerID int64 }

// OrderTarget refers to pedidos.id.
type OrderTarget struct{ OrderID int64 }

func (t ArticleTarget) Kind() TargetKind  { return KindArticle }
func (t ArticleTarget) TargetID() int64   { return t.ArticleID }
func (ArticleTarget) isIssueTarget()      {}
func (t CustomerTarget) Kind() TargetKind { return KindCustomer }
func (t CustomerTarget) TargetID() int64  { return t.CustomerID }
func (CustomerTarget) isIssueTarget()     {}
func (t OrderTarget) Kind() TargetKind    { return KindOrder }
func (t OrderTarget) TargetID() int64     { return t.OrderID }
func (OrderTarget) isIssueTarget()        {}

// ParseIssueTarget builds a target from its wire kind and id. Unknown kinds
// and zero ids are rejected with ErrInvalidInput.
func ParseIssueTarget(kind string, id int64) (IssueTarget, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: target id must not be 0", ErrInvalidInput)
	}

	switch TargetKind(strings.TrimSpace(kind)) {
	case KindArticle:
		return ArticleTarget{ArticleID: id}, nil
	case KindCustomer:
		return CustomerTarget{CustomerID: id}, nil
	case KindOrder:
		return OrderTarget{OrderID: id}, nil
	case "":
		return nil, fmt.Errorf("%w: target type is required", ErrInvalidInput)
	default:
		return nil, fmt.Errorf("%w: unknown target type %q", ErrInvalidInput, kind)
	}
}

// IssuePayload is the JSON document stored in issue_request.data.
type IssuePayload struct {
	Type        TargetKind `json:"type"`
	ID          int64      `json:"id"`
	Subject     string     `json:"subject"`
	Description string     `json:"description"`
}

// IssueRequest is the local record of a request to open a ticket. ExternalID
// is the ticketing system's id and stays nil until the ticket is confirmed.
type IssueRequest struct {
	ID         int64
	CreatedAt  time.Time
	Data       IssuePayload
	ExternalID *int64
}
