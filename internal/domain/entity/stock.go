package entity

import (
	"time"
)

var QualityGrades = []string{"A", "B", "C", "Premium"}

type StockImage struct {
	URL       string `json:"url" firestore:"url"`
	StorageID string `json:"storage_id" firestore:"storageId"`
	AltText   string `json:"alt_text,omitempty" firestore:"altText,omitempty"`
}

type StockLocation struct {
	City    string `json:"city" firestore:"city"`
	State   string `json:"state" firestore:"state"`
	Pincode string `json:"pincode" firestore:"pincode"`
}

// Stock is a concrete, dated inventory lot. It references a supplier and a
// catalog material but has its own lifecycle, owned by the creating user.
type Stock struct {
	ID          string  `json:"id" firestore:"id"`
	UserID      string  `json:"user_id" firestore:"userId"`
	SupplierID  string  `json:"supplier_id" firestore:"supplierId"`
	MaterialID  string  `json:"material_id" firestore:"materialId"`
	Quantity    float64 `json:"quantity" firestore:"quantity"`
	Price       float64 `json:"price" firestore:"price"`
	Description string  `json:"description,omitempty" firestore:"description,omitempty"`

	Images   []StockImage  `json:"images" firestore:"images"`
	Location StockLocation `json:"location" firestore:"location"`

	HarvestDate  *time.Time `json:"harvest_date,omitempty" firestore:"harvestDate,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty" firestore:"expiryDate,omitempty"`
	QualityGrade string     `json:"quality_grade" firestore:"qualityGrade"`
	Availability bool       `json:"availability" firestore:"availability"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func IsValidQualityGrade(grade string) bool {
	for _, g := range QualityGrades {
		if g == grade {
			return true
		}
	}
	return false
}
