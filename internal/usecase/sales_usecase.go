package usecase

import (
	"context"
	"strings"

	"sampledash/internal/domain/entity"
	"sampledash/internal/domain/repository"
	"sampledash/pkg/logger"
)

// salesPageSize is the fixed page the sales endpoint serves.
const salesPageSize = 100

type SalesUseCase struct {
	saleRepo     repository.SaleRepository
	snapshotRepo repository.SnapshotRepository
}

func NewSalesUseCase(
	saleRepo repository.SaleRepository,
	snapshotRepo repository.SnapshotRepository,
) *SalesUseCase {
	return &SalesUseCase{
		saleRepo:     saleRepo,
		snapshotRepo: snapshotRepo,
	}
}

// ListSales fetches a fixed page of sales and applies the optional filters
// after the fetch. itemName keeps sales where some item's name matches
// case-insensitively (exact match, not substring). couponUsed keeps sales
// with the coupon flag set only when the filter is literally "true"; any
// other value is a no-op. Both filters apply when both are given.
func (uc *SalesUseCase) ListSales(ctx context.Context, itemName, couponUsed string) ([]*entity.Sale, error) {
	sales, err := uc.saleRepo.List(ctx, salesPageSize)
	if err != nil {
		logger.Error("Failed to fetch sales data: %v", err)
		return nil, err
	}

	if itemName != "" {
		needle := strings.ToLower(itemName)
		filtered := make([]*entity.Sale, 0, len(sales))
		for _, sale := range sales {
			if saleHasItem(sale, needle) {
				filtered = append(filtered, sale)
			}
		}
		sales = filtered
	}

	if couponUsed == "true" {
		filtered := make([]*entity.Sale, 0, len(sales))
		for _, sale := range sales {
			if sale.CouponUsed {
				filtered = append(filtered, sale)
			}
		}
		sales = filtered
	}

	return sales, nil
}

// SaveSnapshot stores an arbitrary client payload verbatim.
func (uc *SalesUseCase) SaveSnapshot(ctx context.Context, payload map[string]interface{}) error {
	if err := uc.snapshotRepo.Insert(ctx, payload); err != nil {
		logger.Error("Failed to store snapshot: %v", err)
		return err
	}

	return nil
}

func saleHasItem(sale *entity.Sale, loweredName string) bool {
	for _, item := range sale.Items {
		if strings.ToLower(item.Name) == loweredName {
			return true
		}
	}
	return false
}
