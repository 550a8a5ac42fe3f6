package http

import (
	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/pkg/shopsdk"
)

func toCustomer(c domain.Customer) shopsdk.Customer {
	return shopsdk.Customer{
		ID:            c.ID,
		UserID:        c.UserID,
		Nombre:        c.Name,
		Email:         c.Email,
		Telefono:      c.Phone,
		Direccion:     c.Address,
		FechaRegistro: c.RegisteredAt,
	}
}

func fromCustomerRequest(req shopsdk.CustomerRequest) domain.Customer {
	return domain.Customer{
		UserID:  req.UserID,
		Name:    req.Nombre,
		Email:   req.Email,
		Phone:   req.Telefono,
		Address: req.Direccion,
	}
}

func toArticle(a domain.Article) shopsdk.Article {
	return shopsdk.Article{
		ID:            a.ID,
		Nombre:        a.Name,
		Descripcion:   a.Description,
		Precio:        a.Price,
		Stock:         a.Stock,
		FechaCreacion: a.CreatedAt,
	}
}

func fromArticleRequest(req shopsdk.ArticleRequest) domain.Article {
	return domain.Article{
		ID:          req.ID,
		Name:        req.Nombre,
		Description: req.Descripcion,
		Price:       req.Precio,
		Stock:       req.Stock,
	}
}

func toIssue(r domain.IssueRequest) shopsdk.IssueRequest {
	return shopsdk.IssueRequest{
		ID:            r.ID,
		FechaCreacion: r.CreatedAt,
		Data: shopsdk.IssueData{
			Type:        string(r.Data.Type),
			ID:          r.Data.ID,
			Subject:     r.Data.Subject,
			Description: r.Data.Description,
		},
		IssueID: r.ExternalID,
	}
}

func toIssues(in []domain.IssueRequest) []shopsdk.IssueRequest {
	out := make([]shopsdk.IssueRequest, 0, len(in))
	for _, r := range in {
		out = append(out, toIssue(r))
	}
	return out
}

func toCorpPerson(p domain.CorpPerson) *shopsdk.CorpPerson {
	out := &shopsdk.CorpPerson{
		Person: shopsdk.CorpPersonData{
			ID:        p.Person.ID,
			DNI:       p.Person.DNI,
			Nombre:    p.Person.Name,
			Apellidos: p.Person.Surnames,
			Email:     p.Person.Email,
			Telefono:  p.Person.Telephone,
		},
		Apps:            make([]shopsdk.CorpApp, 0, len(p.Apps)),
		PersonAppGrants: make([]shopsdk.CorpPersonApp, 0, len(p.PersonAppGrants)),
	}
	for _, a := range p.Apps {
		out.Apps = append(out.Apps, shopsdk.CorpApp(a))
	}
	for _, g := range p.PersonAppGrants {
		out.PersonAppGrants = append(out.PersonAppGrants, shopsdk.CorpPersonApp(g))
	}
	return out
}

func toProfile(agg domain.AggregateProfile) shopsdk.ProfileResponse {
	resp := shopsdk.ProfileResponse{
		UserID:       agg.UserID,
		IssueHistory: toIssues(agg.IssueHistory),
	}
	if agg.Customer != nil {
		c := toCustomer(*agg.Customer)
		resp.Customer = &c
	}
	if agg.CorpPerson != nil {
		resp.CorpPerson = toCorpPerson(*agg.CorpPerson)
	}
	return resp
}
