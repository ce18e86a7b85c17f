package services

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// trackingNumberPrefix identifies tracking numbers issued by this system.
const trackingNumberPrefix = "TRK"

// TrackingNumberGenerator is a domain service that produces human-readable
// tracking-number candidates of the form TRK-YYYYMMDD-NNNNNN, combining the
// UTC day of issue with six random digits.
//
// The generator alone cannot guarantee global uniqueness; it produces
// candidates that are unique with high probability within a day. The store's
// unique constraint is the authority, and the create workflow regenerates and
// retries a bounded number of times on collision.
//
// Example usage:
//
//	generator := services.NewTrackingNumberGenerator()
//	number := generator.Generate(time.Now())
//	// number == "TRK-20260831-483921"
type TrackingNumberGenerator struct{}

// NewTrackingNumberGenerator creates a new TrackingNumberGenerator instance.
func NewTrackingNumberGenerator() TrackingNumberGenerator {
	return TrackingNumberGenerator{}
}

// Generate produces a tracking-number candidate for the given issue time.
// The day component uses UTC so numbers sort consistently across time zones.
// Calling Generate twice with the same time yields different candidates with
// high probability; callers must still handle collisions.
func (g TrackingNumberGenerator) Generate(at time.Time) string {
	return fmt.Sprintf("%s-%s-%06d",
		trackingNumberPrefix,
		at.UTC().Format("20060102"),
		rand.IntN(1_000_000),
	)
}
