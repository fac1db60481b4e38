package repository

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection      = "users"
	userEmailsCollection = "userEmails"
	materialsCollection  = "materials"
	suppliersCollection  = "suppliers"
	vendorsCollection    = "vendors"
	stocksCollection     = "stocks"
)

func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func IsAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
