package postgres

import (
	"context"
	"fmt"
	"time"

	"urlshot/pkg/domain"
	"urlshot/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	capturesTable = "captures"
)

// StoreCapture inserts one capture record and returns the stored row.
func (p *PgSQL) StoreCapture(ctx context.Context, capture domain.Capture) (*domain.Capture, error) {
	var pgCapture PgCapture
	if err := pgCapture.FromDomain(capture); err != nil {
		return nil, err
	}

	var row PgCapture
	found, err := p.Builder.Insert(capturesTable).
		Rows(pgCapture).
		Returning(&PgCapture{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not store capture into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store capture into pg: no row returned")
	}

	return row.ToDomain()
}

// CaptureByID returns a capture by its ID, excluding soft-deleted rows.
func (p *PgSQL) CaptureByID(ctx context.Context, id domain.CaptureID) (*domain.Capture, error) {
	var row PgCapture
	found, err := p.Builder.From(capturesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch capture by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// RecentCaptures returns a page of captures created before the optional cursor,
// ordered by created_at DESC, id DESC. Returns a next cursor for pagination.
func (p *PgSQL) RecentCaptures(ctx context.Context, cursor time.Time, limit uint) (storage.CaptureList, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(capturesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgCapture
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.CaptureList{}, fmt.Errorf("could not fetch recent captures from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	domainRows, err := pgCapturesToDomain(rows)
	if err != nil {
		return storage.CaptureList{}, err
	}

	return storage.CaptureList{
		Captures:   domainRows,
		NextCursor: nextCursor,
	}, nil
}

// DeleteCapture performs a soft delete by setting the deleted_at timestamp for
// the given capture id, returning the deleted record.
func (p *PgSQL) DeleteCapture(ctx context.Context, id domain.CaptureID) (*domain.Capture, error) {
	var row PgCapture
	found, err := p.Builder.Update(capturesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgCapture{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete capture in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// Ensure PgSQL satisfies the storage interfaces at compile time.
var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)
