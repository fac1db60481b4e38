package service

import (
	"context"
)

// Mailer delivers transactional mail. Callers treat every send as
// best-effort: a failed send is logged and never fails the enclosing
// operation.
type Mailer interface {
	SendWelcome(ctx context.Context, to, name string) error
	SendVerifyOTP(ctx context.Context, to, name, otp string) error
	SendResetOTP(ctx context.Context, to, name, otp string) error
}
