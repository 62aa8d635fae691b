package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"phishguard/internal/domain"
)

const aggregateColumns = `id::text, url, url_key, risk_score, status, risk_label, response_time, risk_reasons, scan_count, first_seen, last_scanned`

// AggregateRepository

// UpsertAggregate relies on the url_key unique constraint, so concurrent
// scans of one URL in different casings land on the same row.
func (db *DB) UpsertAggregate(ctx context.Context, id string, v domain.Verdict, at time.Time) (domain.AggregateRecord, error) {
	key, err := pgUUID(id)
	if err != nil {
		return domain.AggregateRecord{}, err
	}
	reasons := v.RiskReasons
	if reasons == nil {
		reasons = []string{}
	}
	rows, err := db.Pool.Query(ctx, `
        INSERT INTO url_aggregates (id, url, url_key, risk_score, status, risk_label, response_time, risk_reasons, scan_count, first_seen, last_scanned)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, $9, $9)
        ON CONFLICT (url_key) DO UPDATE SET
            risk_score    = EXCLUDED.risk_score,
            status        = EXCLUDED.status,
            risk_label    = EXCLUDED.risk_label,
            response_time = EXCLUDED.response_time,
            risk_reasons  = EXCLUDED.risk_reasons,
            scan_count    = url_aggregates.scan_count + 1,
            last_scanned  = EXCLUDED.last_scanned
        RETURNING `+aggregateColumns,
		key, v.URL, domain.URLKey(v.URL), v.RiskScore, string(v.Status), v.RiskLabel, v.ResponseTime, reasons, at)
	if err != nil {
		return domain.AggregateRecord{}, err
	}
	return pgx.CollectExactlyOneRow(rows, scanAggregate)
}

func (db *DB) GetAggregateByURL(ctx context.Context, url string) (domain.AggregateRecord, bool, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+aggregateColumns+` FROM url_aggregates WHERE url_key = $1`, domain.URLKey(url))
	if err != nil {
		return domain.AggregateRecord{}, false, err
	}
	rec, err := pgx.CollectExactlyOneRow(rows, scanAggregate)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.AggregateRecord{}, false, nil
	}
	if err != nil {
		return domain.AggregateRecord{}, false, err
	}
	return rec, true, nil
}

func (db *DB) ListAggregates(ctx context.Context) ([]domain.AggregateRecord, error) {
	rows, err := db.Pool.Query(ctx, `SELECT `+aggregateColumns+` FROM url_aggregates ORDER BY url_key`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanAggregate)
}

func (db *DB) DeleteAggregate(ctx context.Context, id string) (bool, error) {
	key, err := pgUUID(id)
	if err != nil {
		return false, nil
	}
	tag, err := db.Pool.Exec(ctx, `DELETE FROM url_aggregates WHERE id = $1`, key)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// ReplaceAggregates swaps the whole table in one transaction.
func (db *DB) ReplaceAggregates(ctx context.Context, recs []domain.AggregateRecord) (err error) {
	tx, err := db.Pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM url_aggregates`); err != nil {
		return err
	}
	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"url_aggregates"},
		[]string{"id", "url", "url_key", "risk_score", "status", "risk_label", "response_time", "risk_reasons", "scan_count", "first_seen", "last_scanned"},
		pgx.CopyFromSlice(len(recs), func(i int) ([]any, error) {
			r := recs[i]
			id, err := pgUUID(r.ID)
			if err != nil {
				return nil, err
			}
			reasons := r.Latest.RiskReasons
			if reasons == nil {
				reasons = []string{}
			}
			return []any{id, r.Latest.URL, r.URLKey, r.Latest.RiskScore, string(r.Latest.Status),
				r.Latest.RiskLabel, r.Latest.ResponseTime, reasons, r.ScanCount, r.FirstSeen, r.LastScanned}, nil
		}),
	)
	return err
}

func scanAggregate(row pgx.CollectableRow) (domain.AggregateRecord, error) {
	var r domain.AggregateRecord
	var status string
	err := row.Scan(&r.ID, &r.Latest.URL, &r.URLKey, &r.Latest.RiskScore, &status, &r.Latest.RiskLabel,
		&r.Latest.ResponseTime, &r.Latest.RiskReasons, &r.ScanCount, &r.FirstSeen, &r.LastScanned)
	r.Latest.Status = domain.Status(status)
	return r, err
}
