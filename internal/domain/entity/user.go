package entity

import (
	"time"
)

const (
	RoleSupplier = "supplier"
	RoleVendor   = "vendor"
)

type User struct {
	ID           string `json:"id" firestore:"id"`
	Name         string `json:"name" firestore:"name"`
	Email        string `json:"email" firestore:"email"`
	PasswordHash string `json:"-" firestore:"passwordHash"`
	Role         string `json:"role" firestore:"role"`

	IsVerified      bool      `json:"is_verified" firestore:"isVerified"`
	VerifyOTP       string    `json:"-" firestore:"verifyOTP"`
	VerifyOTPExpiry time.Time `json:"-" firestore:"verifyOTPExpiry"`
	ResetOTP        string    `json:"-" firestore:"resetOTP"`
	ResetOTPExpiry  time.Time `json:"-" firestore:"resetOTPExpiry"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
