package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/w3f-grants-archive/nolik-cli/internal/errs"
	"github.com/w3f-grants-archive/nolik-cli/store/submissionstore"
)

// Create records a fresh submission in StatusInit.
func (s *Store) Create(ctx context.Context, sub *submissionstore.Submission) error {
	query := `
		INSERT INTO submissions (content_id, sender, recipient, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.pool.Exec(ctx, query,
		sub.ContentID, sub.Sender, sub.Recipient, submissionstore.StatusInit,
		sub.CreatedAt, sub.UpdatedAt,
	)
	if err != nil {
		return errs.Storage(errs.CodePutFailed, "create submission", err)
	}
	return nil
}

// Get retrieves a submission by content-id and recipient.
func (s *Store) Get(ctx context.Context, contentID, recipient string) (*submissionstore.Submission, error) {
	query := `
		SELECT content_id, sender, recipient, status, reject_reason, extrinsic_ref, created_at, updated_at
		FROM submissions
		WHERE content_id = $1 AND recipient = $2
	`

	var sub submissionstore.Submission
	var rejectReason, extrinsicRef *string

	err := s.pool.QueryRow(ctx, query, contentID, recipient).Scan(
		&sub.ContentID, &sub.Sender, &sub.Recipient, &sub.Status,
		&rejectReason, &extrinsicRef, &sub.CreatedAt, &sub.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, errs.Storage(errs.CodeGetFailed, fmt.Sprintf("submission not found: %s/%s", contentID, recipient), nil)
	}
	if err != nil {
		return nil, errs.Storage(errs.CodeGetFailed, "get submission", err)
	}

	if rejectReason != nil {
		sub.RejectReason = submissionstore.RejectReason(*rejectReason)
	}
	if extrinsicRef != nil {
		sub.ExtrinsicRef = *extrinsicRef
	}
	return &sub, nil
}

// MarkSubmitted transitions INIT -> SUBMITTED.
func (s *Store) MarkSubmitted(ctx context.Context, contentID, recipient, extrinsicRef string) error {
	query := `
		UPDATE submissions
		SET status = $1, extrinsic_ref = $2, updated_at = NOW()
		WHERE content_id = $3 AND recipient = $4
	`
	result, err := s.pool.Exec(ctx, query, submissionstore.StatusSubmitted, extrinsicRef, contentID, recipient)
	if err != nil {
		return errs.Storage(errs.CodePutFailed, "mark submitted", err)
	}
	if result.RowsAffected() == 0 {
		return errs.Storage(errs.CodeGetFailed, fmt.Sprintf("submission not found: %s/%s", contentID, recipient), nil)
	}
	return nil
}

// MarkConfirmed transitions SUBMITTED -> CONFIRMED.
func (s *Store) MarkConfirmed(ctx context.Context, contentID, recipient string) error {
	query := `
		UPDATE submissions
		SET status = $1, updated_at = NOW()
		WHERE content_id = $2 AND recipient = $3
	`
	result, err := s.pool.Exec(ctx, query, submissionstore.StatusConfirmed, contentID, recipient)
	if err != nil {
		return errs.Storage(errs.CodePutFailed, "mark confirmed", err)
	}
	if result.RowsAffected() == 0 {
		return errs.Storage(errs.CodeGetFailed, fmt.Sprintf("submission not found: %s/%s", contentID, recipient), nil)
	}
	return nil
}

// MarkRejected transitions SUBMITTED -> REJECTED{reason}.
func (s *Store) MarkRejected(ctx context.Context, contentID, recipient string, reason submissionstore.RejectReason) error {
	query := `
		UPDATE submissions
		SET status = $1, reject_reason = $2, updated_at = NOW()
		WHERE content_id = $3 AND recipient = $4
	`
	result, err := s.pool.Exec(ctx, query, submissionstore.StatusRejected, string(reason), contentID, recipient)
	if err != nil {
		return errs.Storage(errs.CodePutFailed, "mark rejected", err)
	}
	if result.RowsAffected() == 0 {
		return errs.Storage(errs.CodeGetFailed, fmt.Sprintf("submission not found: %s/%s", contentID, recipient), nil)
	}
	return nil
}

// ListBySender lists every submission a sender has issued, most recent
// first.
func (s *Store) ListBySender(ctx context.Context, sender string, limit, offset int) ([]*submissionstore.Submission, error) {
	query := `
		SELECT content_id, sender, recipient, status, reject_reason, extrinsic_ref, created_at, updated_at
		FROM submissions
		WHERE sender = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := s.pool.Query(ctx, query, sender, limit, offset)
	if err != nil {
		return nil, errs.Storage(errs.CodeGetFailed, "list submissions by sender", err)
	}
	defer rows.Close()

	return scanSubmissions(rows)
}

// ListPending lists submissions still in StatusSubmitted.
func (s *Store) ListPending(ctx context.Context) ([]*submissionstore.Submission, error) {
	query := `
		SELECT content_id, sender, recipient, status, reject_reason, extrinsic_ref, created_at, updated_at
		FROM submissions
		WHERE status = $1
	`

	rows, err := s.pool.Query(ctx, query, submissionstore.StatusSubmitted)
	if err != nil {
		return nil, errs.Storage(errs.CodeGetFailed, "list pending submissions", err)
	}
	defer rows.Close()

	return scanSubmissions(rows)
}

func scanSubmissions(rows pgx.Rows) ([]*submissionstore.Submission, error) {
	var subs []*submissionstore.Submission
	for rows.Next() {
		var sub submissionstore.Submission
		var rejectReason, extrinsicRef *string

		if err := rows.Scan(
			&sub.ContentID, &sub.Sender, &sub.Recipient, &sub.Status,
			&rejectReason, &extrinsicRef, &sub.CreatedAt, &sub.UpdatedAt,
		); err != nil {
			return nil, errs.Storage(errs.CodeGetFailed, "scan submission row", err)
		}

		if rejectReason != nil {
			sub.RejectReason = submissionstore.RejectReason(*rejectReason)
		}
		if extrinsicRef != nil {
			sub.ExtrinsicRef = *extrinsicRef
		}
		subs = append(subs, &sub)
	}
	if err := rows.Err(); err != nil {
		return nil, errs.Storage(errs.CodeGetFailed, "iterate submission rows", err)
	}
	return subs, nil
}
