package entity

import (
	"time"
)

// MaterialOffer is one entry in a supplier's ledger: the terms under which the
// supplier offers a catalog material. A material appears at most once per
// supplier.
type MaterialOffer struct {
	MaterialID   string    `json:"material_id" firestore:"materialId"`
	Price        float64   `json:"price" firestore:"price"`
	Quantity     float64   `json:"quantity" firestore:"quantity"`
	Availability bool      `json:"availability" firestore:"availability"`
	Description  string    `json:"description,omitempty" firestore:"description,omitempty"`
	AddedAt      time.Time `json:"added_at" firestore:"addedAt"`
}

// Supplier is the one-per-user ledger document holding the user's material
// offers. Only the owning user may mutate the embedded list.
type Supplier struct {
	ID           string          `json:"id" firestore:"id"`
	UserID       string          `json:"user_id" firestore:"userId"`
	RawMaterials []MaterialOffer `json:"raw_materials" firestore:"rawMaterials"`

	// MaterialIDs mirrors RawMaterials[].MaterialID so the document can be
	// matched with an array-contains query. Maintained by the repository.
	MaterialIDs []string `json:"-" firestore:"materialIds"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// OfferFor returns the ledger entry for materialID, or nil when absent.
func (s *Supplier) OfferFor(materialID string) *MaterialOffer {
	for i := range s.RawMaterials {
		if s.RawMaterials[i].MaterialID == materialID {
			return &s.RawMaterials[i]
		}
	}
	return nil
}
