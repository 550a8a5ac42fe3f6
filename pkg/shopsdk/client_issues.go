package shopsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateIssue records an issue and opens a ticket for it. When the ticketing
// system fails the local record is kept and an ErrTemporarilyUnavailable
// APIError is returned.
func (s *Session) CreateIssue(ctx context.Context, req CreateIssueRequest) (*IssueRequest, error) {
	resp, err := s.do(ctx, http.MethodPost, "/v1/issues", req)
	if err != nil {
		return nil, err
	}

	var issue IssueRequest
	if err := decodeJSON(resp, &issue, http.StatusCreated); err != nil {
		return nil, err
	}
	return &issue, nil
}

// ListIssues returns the issues raised against a record, newest first.
func (s *Session) ListIssues(ctx context.Context, targetType string, id int64) ([]IssueRequest, error) {
	path := fmt.Sprintf("/v1/issues/%s/%d", url.PathEscape(targetType), id)
	resp, err := s.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var list ListIssuesResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return list.Issues, nil
}
