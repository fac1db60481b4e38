package usecase

import (
	"context"

	"cropsight/internal/domain/repository"
	"cropsight/pkg/errors"
)

// PricingUseCase is the naive price estimator: the prediction is the plain
// arithmetic mean of every ledger price currently listed for the material.
// No weighting, no outlier handling.
type PricingUseCase struct {
	supplierRepo repository.SupplierRepository
}

func NewPricingUseCase(supplierRepo repository.SupplierRepository) *PricingUseCase {
	return &PricingUseCase{supplierRepo: supplierRepo}
}

type PricePrediction struct {
	MaterialID     string    `json:"material_id"`
	PredictedPrice float64   `json:"predicted_price"`
	Prices         []float64 `json:"prices"`
}

func (uc *PricingUseCase) Predict(ctx context.Context, materialID string) (*PricePrediction, error) {
	suppliers, err := uc.supplierRepo.ListByMaterial(ctx, materialID)
	if err != nil {
		return nil, err
	}

	var prices []float64
	for _, supplier := range suppliers {
		for _, offer := range supplier.RawMaterials {
			if offer.MaterialID == materialID {
				prices = append(prices, offer.Price)
			}
		}
	}

	if len(prices) == 0 {
		return nil, errors.NotFound("Price data for this material", nil)
	}

	var sum float64
	for _, price := range prices {
		sum += price
	}

	return &PricePrediction{
		MaterialID:     materialID,
		PredictedPrice: sum / float64(len(prices)),
		Prices:         prices,
	}, nil
}
