package repository

import (
	"context"

	"sampledash/internal/domain/entity"
)

type SaleRepository interface {
	// List returns up to limit sales in storage order. No filter is pushed
	// to storage; the sales service filters the page after the fetch.
	List(ctx context.Context, limit int) ([]*entity.Sale, error)
}

type SnapshotRepository interface {
	// Insert stores the payload verbatim. No schema validation.
	Insert(ctx context.Context, payload map[string]interface{}) error
}
