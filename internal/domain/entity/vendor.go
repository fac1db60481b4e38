package entity

import (
	"time"
)

// Vendor is the one-per-user preferences document. PreferredMaterials holds
// catalog material IDs with no duplicates; membership is informational only.
type Vendor struct {
	ID                 string    `json:"id" firestore:"id"`
	UserID             string    `json:"user_id" firestore:"userId"`
	PreferredMaterials []string  `json:"preferred_materials" firestore:"preferredMaterials"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (v *Vendor) Prefers(materialID string) bool {
	for _, id := range v.PreferredMaterials {
		if id == materialID {
			return true
		}
	}
	return false
}
