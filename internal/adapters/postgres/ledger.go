package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"phishguard/internal/domain"
)

const ledgerColumns = `id::text, url, domain, risk_score, status, risk_label, response_time, risk_reasons, scanned_at`

// LedgerRepository

func (db *DB) AppendEntry(ctx context.Context, e domain.LedgerEntry) error {
	id, err := pgUUID(e.ID)
	if err != nil {
		return err
	}
	reasons := e.Verdict.RiskReasons
	if reasons == nil {
		reasons = []string{}
	}
	_, err = db.Pool.Exec(ctx, `
        INSERT INTO scan_ledger (id, url, domain, risk_score, status, risk_label, response_time, risk_reasons, scanned_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, id, e.Verdict.URL, e.Domain, e.Verdict.RiskScore, string(e.Verdict.Status),
		e.Verdict.RiskLabel, e.Verdict.ResponseTime, reasons, e.Timestamp)
	return err
}

func (db *DB) ListEntries(ctx context.Context, page domain.Page) ([]domain.LedgerEntry, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + ledgerColumns + ` FROM scan_ledger ORDER BY scanned_at DESC, seq DESC`)
	args := []any{}
	if page.Limit > 0 {
		args = append(args, page.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}
	if page.Offset > 0 {
		args = append(args, page.Offset)
		fmt.Fprintf(&sb, " OFFSET $%d", len(args))
	}
	return db.queryEntries(ctx, sb.String(), args...)
}

func (db *DB) ListEntriesByURL(ctx context.Context, url string) ([]domain.LedgerEntry, error) {
	return db.queryEntries(ctx, `
        SELECT `+ledgerColumns+` FROM scan_ledger
        WHERE lower(url) = lower($1)
        ORDER BY scanned_at DESC, seq DESC
    `, url)
}

func (db *DB) ListEntriesOldestFirst(ctx context.Context) ([]domain.LedgerEntry, error) {
	return db.queryEntries(ctx, `SELECT `+ledgerColumns+` FROM scan_ledger ORDER BY scanned_at, seq`)
}

func (db *DB) DeleteEntry(ctx context.Context, id string) (bool, error) {
	key, err := pgUUID(id)
	if err != nil {
		return false, nil
	}
	tag, err := db.Pool.Exec(ctx, `DELETE FROM scan_ledger WHERE id = $1`, key)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (db *DB) SummarizeEntries(ctx context.Context) (domain.Stats, error) {
	var out domain.Stats
	err := db.Pool.QueryRow(ctx, `
        SELECT count(*),
               count(*) FILTER (WHERE status = 'PHISHING'),
               count(*) FILTER (WHERE status = 'SUSPICIOUS'),
               count(*) FILTER (WHERE status = 'SAFE'),
               COALESCE(avg(response_time), 0)
        FROM scan_ledger
    `).Scan(&out.Total, &out.Phishing, &out.Suspicious, &out.Safe, &out.AvgResponseTime)
	return out, err
}

func (db *DB) queryEntries(ctx context.Context, sql string, args ...any) ([]domain.LedgerEntry, error) {
	rows, err := db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanEntry)
}

func scanEntry(row pgx.CollectableRow) (domain.LedgerEntry, error) {
	var e domain.LedgerEntry
	var status string
	err := row.Scan(&e.ID, &e.Verdict.URL, &e.Domain, &e.Verdict.RiskScore, &status,
		&e.Verdict.RiskLabel, &e.Verdict.ResponseTime, &e.Verdict.RiskReasons, &e.Timestamp)
	e.Verdict.Status = domain.Status(status)
	return e, err
}
