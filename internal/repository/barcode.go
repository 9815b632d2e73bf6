package repository

import (
	"context"

	"barcodeapi/internal/model"
)

// BarcodeRepository defines data access for barcodes. No business logic here.
// Lookups by id report a missing row as sql.ErrNoRows.
type BarcodeRepository interface {
	// FindByID returns the full record.
	FindByID(ctx context.Context, id string) (*model.Barcode, error)

	// FindStatus returns only the owner and edit flag of a record.
	FindStatus(ctx context.Context, id string) (*model.BarcodeStatus, error)

	// FindOwner returns only the id and owner of a record.
	FindOwner(ctx context.Context, id string) (*model.BarcodeOwner, error)

	// List returns one page of records and the total row count for the same
	// filter. Both reads observe a single snapshot.
	List(ctx context.Context, q ListQuery) (*PageResult[model.Barcode], error)

	// Delete removes a record. It returns sql.ErrNoRows if nothing was deleted.
	Delete(ctx context.Context, id string) error

	// UpdateEditFlag sets edit_flag on a record. It returns sql.ErrNoRows if nothing was updated.
	UpdateEditFlag(ctx context.Context, id string, editFlag bool) error
}

// Filter is a sparse equality predicate; nil fields are not part of it.
type Filter struct {
	UserID   *string
	Type     *model.BarcodeType
	EditFlag *bool
}

// Condition is a single column = value term.
type Condition struct {
	Column string
	Value  any
}

// Conditions returns the supplied terms in a stable column order.
func (f Filter) Conditions() []Condition {
	out := make([]Condition, 0, 3)
	if f.UserID != nil {
		out = append(out, Condition{Column: "user_id", Value: *f.UserID})
	}
	if f.Type != nil {
		out = append(out, Condition{Column: "type", Value: string(*f.Type)})
	}
	if f.EditFlag != nil {
		out = append(out, Condition{Column: "edit_flag", Value: *f.EditFlag})
	}
	return out
}

// SortField names the timestamp a listing is ordered by, always descending.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByUpdatedAt SortField = "updatedAt"
)

// Column maps the field to its column. Unknown values fall back to created_at
// so that arbitrary input never reaches the ORDER BY clause.
func (s SortField) Column() string {
	if s == SortByUpdatedAt {
		return "updated_at"
	}
	return "created_at"
}

// ListQuery combines predicate, ordering and limit/offset pagination.
type ListQuery struct {
	Filter Filter
	SortBy SortField
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
