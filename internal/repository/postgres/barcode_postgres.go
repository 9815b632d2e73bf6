package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"barcodeapi/internal/model"
	"barcodeapi/internal/repository"
)

const barcodeColumns = `id, user_id, type, url, edit_flag, created_at, updated_at`

// BarcodePostgres is a PostgreSQL implementation of repository.BarcodeRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type BarcodePostgres struct {
	db *sql.DB
}

// NewBarcodePostgres creates a new BarcodePostgres repository.
func NewBarcodePostgres(db *sql.DB) *BarcodePostgres {
	return &BarcodePostgres{db: db}
}

var _ repository.BarcodeRepository = (*BarcodePostgres)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBarcode(s rowScanner) (*model.Barcode, error) {
	var b model.Barcode
	if err := s.Scan(
		&b.ID,
		&b.UserID,
		&b.Type,
		&b.URL,
		&b.EditFlag,
		&b.CreatedAt,
		&b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &b, nil
}

// FindByID fetches a single barcode by its ID.
func (r *BarcodePostgres) FindByID(ctx context.Context, id string) (*model.Barcode, error) {
	const q = `
		SELECT ` + barcodeColumns + `
		FROM barcodes
		WHERE id = $1
	`
	return scanBarcode(r.db.QueryRowContext(ctx, q, id))
}

// FindStatus fetches the owner and edit flag of a barcode.
func (r *BarcodePostgres) FindStatus(ctx context.Context, id string) (*model.BarcodeStatus, error) {
	const q = `SELECT user_id, edit_flag FROM barcodes WHERE id = $1`
	var s model.BarcodeStatus
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&s.UserID, &s.EditFlag); err != nil {
		return nil, err
	}
	return &s, nil
}

// FindOwner fetches the id and owner of a barcode.
func (r *BarcodePostgres) FindOwner(ctx context.Context, id string) (*model.BarcodeOwner, error) {
	const q = `SELECT id, user_id FROM barcodes WHERE id = $1`
	var o model.BarcodeOwner
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&o.ID, &o.UserID); err != nil {
		return nil, err
	}
	return &o, nil
}

// whereClause renders the filter as " WHERE a = $1 AND b = $2" plus its args.
func whereClause(f repository.Filter) (string, []any) {
	conds := f.Conditions()
	if len(conds) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(conds))
	args := make([]any, 0, len(conds))
	for i, c := range conds {
		parts = append(parts, fmt.Sprintf("%s = $%d", c.Column, i+1))
		args = append(args, c.Value)
	}
	return " WHERE " + strings.Join(parts, " AND "), args
}

// List returns one page and the total count for the filter. Both statements run
// in a read-only repeatable-read transaction so the count matches the page.
func (r *BarcodePostgres) List(ctx context.Context, lq repository.ListQuery) (*repository.PageResult[model.Barcode], error) {
	where, args := whereClause(lq.Filter)

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin list tx: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback() }()

	var total int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM barcodes"+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count barcodes: %w", err)
	}

	items, err := listPage(ctx, tx, where, args, lq)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit list tx: %w", err)
	}

	return &repository.PageResult[model.Barcode]{
		Items: items,
		Total: total,
	}, nil
}

func listPage(ctx context.Context, tx *sql.Tx, where string, args []any, lq repository.ListQuery) ([]model.Barcode, error) {
	q := fmt.Sprintf(
		"SELECT %s FROM barcodes%s ORDER BY %s DESC, id DESC LIMIT $%d OFFSET $%d",
		barcodeColumns, where, lq.SortBy.Column(), len(args)+1, len(args)+2,
	)
	pageArgs := append(append(make([]any, 0, len(args)+2), args...), lq.Limit, lq.Offset)

	rows, err := tx.QueryContext(ctx, q, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("list barcodes: %w", err)
	}
	defer rows.Close()

	items := make([]model.Barcode, 0)
	for rows.Next() {
		b, err := scanBarcode(rows)
		if err != nil {
			return nil, fmt.Errorf("scan barcode: %w", err)
		}
		items = append(items, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate barcodes: %w", err)
	}
	return items, nil
}

// Delete removes a barcode by ID.
func (r *BarcodePostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM barcodes WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// UpdateEditFlag sets edit_flag and bumps updated_at.
func (r *BarcodePostgres) UpdateEditFlag(ctx context.Context, id string, editFlag bool) error {
	const q = `UPDATE barcodes SET edit_flag = $1, updated_at = now() WHERE id = $2`
	res, err := r.db.ExecContext(ctx, q, editFlag, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
