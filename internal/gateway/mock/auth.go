// Package mock provides in-process gateway implementations that stand in for
// the real backend: fixed latencies, hardcoded data, no network. They sit
// behind the domain gateway interfaces so a real client can replace them
// without touching callers.
package mock

import (
	"context"
	"time"

	"github.com/tradex-app/tradex/internal/domain"
)

// ValidOTP is the only code VerifyOTP accepts, for any phone number.
const ValidOTP = "123456"

const (
	sendOTPDelay   = 1000 * time.Millisecond
	verifyOTPDelay = 500 * time.Millisecond
)

// AuthGateway is a mock OTP backend.
type AuthGateway struct {
	sendDelay   time.Duration
	verifyDelay time.Duration
}

// NewAuthGateway creates an AuthGateway with production mock latencies.
func NewAuthGateway() *AuthGateway {
	return &AuthGateway{sendDelay: sendOTPDelay, verifyDelay: verifyOTPDelay}
}

// NewAuthGatewayWithDelay creates an AuthGateway with the given latency for
// both calls. Tests pass zero.
func NewAuthGatewayWithDelay(d time.Duration) *AuthGateway {
	return &AuthGateway{sendDelay: d, verifyDelay: d}
}

// SendOTP always succeeds after the configured delay.
func (g *AuthGateway) SendOTP(ctx context.Context, _ string) (bool, error) {
	if err := sleep(ctx, g.sendDelay); err != nil {
		return false, err
	}
	return true, nil
}

// VerifyOTP succeeds iff code equals ValidOTP, regardless of phone.
func (g *AuthGateway) VerifyOTP(ctx context.Context, _, code string) (bool, error) {
	if err := sleep(ctx, g.verifyDelay); err != nil {
		return false, err
	}
	return code == ValidOTP, nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Compile-time interface check.
var _ domain.AuthGateway = (*AuthGateway)(nil)
