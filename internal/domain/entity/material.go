package entity

import (
	"time"
)

// MaterialUnits is the closed set of units a raw material can be measured in.
var MaterialUnits = []string{
	"kg", "g", "dozen", "litre", "ml", "piece", "bundle", "box", "packet", "tray",
}

// RawMaterial is a global catalog entry shared by reference across suppliers,
// vendors and stock listings. NameLower backs the case-insensitive
// (name, category) uniqueness rule.
type RawMaterial struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	NameLower string    `json:"-" firestore:"nameLower"`
	Unit      string    `json:"unit" firestore:"unit"`
	Category  string    `json:"category" firestore:"category"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

func IsValidUnit(unit string) bool {
	for _, u := range MaterialUnits {
		if u == unit {
			return true
		}
	}
	return false
}
