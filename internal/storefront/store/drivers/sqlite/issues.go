package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/domain"
	"github.com/aussiebroadwan/storefront/internal/storefront/store"
)

type issueRequestsRepo struct {
	db  dbtx
	now func() time.Time
}

const issueColumns = `id, fecha_creacion, data, issue_id`

func (r *issueRequestsRepo) CreateIssueRequest(
	ctx context.Context,
	req domain.IssueRequest,
) (domain.IssueRequest, error) {
	if req.CreatedAt.IsZero() {
		req.CreatedAt = r.now()
	}

	data, err := json.Marshal(req.Data)
	if err != nil {
		return domain.IssueRequest{}, fmt.Errorf("encode issue payload: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO issue_request (fecha_creacion, data)
		VALUES (?, ?)
		RETURNING `+issueColumns,
		formatTime(req.CreatedAt), string(data),
	)
	return scanIssueRequest(row)
}

func (r *issueRequestsRepo) CreateIssueLink(
	ctx context.Context,
	issueRequestID int64,
	target domain.IssueTarget,
) error {
	table, column, _ := linkTable(target)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO `+table+` (issue_request_id, `+column+`) VALUES (?, ?)`,
		issueRequestID, target.TargetID(),
	)
	return mapConstraint(err)
}

func (r *issueRequestsRepo) SetExternalID(ctx context.Context, issueRequestID, externalID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE issue_request SET issue_id = ? WHERE id = ?`, externalID, issueRequestID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *issueRequestsRepo) GetIssueRequestByID(ctx context.Context, id int64) (domain.IssueRequest, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+issueColumns+` FROM issue_request WHERE id = ?`, id)
	req, err := scanIssueRequest(row)
	if err != nil {
		return domain.IssueRequest{}, mapNotFound(err)
	}
	return req, nil
}

func (r *issueRequestsRepo) TargetExists(ctx context.Context, target domain.IssueTarget) (bool, error) {
	_, _, parent := linkTable(target)
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM `+parent+` WHERE id = ?`, target.TargetID()).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, err
	}
	return true, nil
}

func (r *issueRequestsRepo) ListIssueRequestsByTarget(
	ctx context.Context,
	target domain.IssueTarget,
) ([]domain.IssueRequest, error) {
	table, column, _ := linkTable(target)
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+issueColumns+`
		FROM issue_request
		WHERE id IN (SELECT issue_request_id FROM `+table+` WHERE `+column+` = ?)
		ORDER BY fecha_creacion DESC, id DESC`,
		target.TargetID(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.IssueRequest{}
	for rows.Next() {
		req, err := scanIssueRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func scanIssueRequest(row rowScanner) (domain.IssueRequest, error) {
	var (
		req      domain.IssueRequest
		created  string
		data     string
		external sql.NullInt64
	)
	if err := row.Scan(&req.ID, &created, &data, &external); err != nil {
		return domain.IssueRequest{}, err
	}

	t, err := parseTime(created)
	if err != nil {
		return domain.IssueRequest{}, err
	}
	if err := json.Unmarshal([]byte(data), &req.Data); err != nil {
		return domain.IssueRequest{}, fmt.Errorf("decode issue payload: %w", err)
	}
	req.CreatedAt = t
	req.ExternalID = mapNullInt64(external)
	return req, nil
}
