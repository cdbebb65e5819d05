// Package sampler centralizes every non-uniform random choice the
// generator makes, so statistical behavior is auditable and testable
// in isolation.
package sampler

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/Pr0fessionalBum/MedicalMDB/pkg/errors"
)

// Default tuning for the recency-biased date draw.
const (
	DefaultDateExponent      = 2.2
	DefaultPenaltyYear       = 1980
	DefaultPenaltyAcceptProb = 0.2
	DefaultDateMaxAttempts   = 5

	DefaultSkewExponent = 1.6
)

// DateBias controls RecencyBiasedDate: a power transform pulls draws
// toward the upper bound, then dates after PenaltyYear are only
// accepted with AcceptProb per attempt.
type DateBias struct {
	Exponent    float64
	PenaltyYear int
	AcceptProb  float64
	MaxAttempts int
}

// DefaultDateBias returns the tuning used by the demo seeder.
func DefaultDateBias() DateBias {
	return DateBias{
		Exponent:    DefaultDateExponent,
		PenaltyYear: DefaultPenaltyYear,
		AcceptProb:  DefaultPenaltyAcceptProb,
		MaxAttempts: DefaultDateMaxAttempts,
	}
}

// Sampler wraps an explicit random source. Inject a fixed-seed source
// for reproducible runs.
type Sampler struct {
	rng *rand.Rand
}

// New creates a sampler over the given source.
func New(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// NewSeeded creates a sampler over a PCG source with the given seed.
func NewSeeded(seed uint64) *Sampler {
	return New(rand.NewPCG(seed, seed+1))
}

// Choice returns one element of pool uniformly at random.
func Choice[T any](s *Sampler, pool []T) (T, error) {
	var zero T
	if len(pool) == 0 {
		return zero, errors.EmptyInput("candidate pool")
	}
	return pool[s.rng.IntN(len(pool))], nil
}

// IntN returns a uniform int in [0, n).
func (s *Sampler) IntN(n int) int {
	return s.rng.IntN(n)
}

// IntRange returns a uniform int in [min, max].
func (s *Sampler) IntRange(min, max int) int {
	return min + s.rng.IntN(max-min+1)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Chance reports true with probability p.
func (s *Sampler) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// SkewedCount returns an integer in [min, max] biased toward min: a
// uniform draw is raised to exponent before scaling, so a larger
// exponent means a stronger pull toward the low end.
func (s *Sampler) SkewedCount(min, max int, exponent float64) int {
	skewed := math.Pow(s.rng.Float64(), exponent)
	count := min + int(skewed*float64(max-min+1))
	if count < min {
		return min
	}
	if count > max {
		return max
	}
	return count
}

// RecencyBiasedDate samples a date in [lower, upper], biased toward
// upper by the power transform, with dates after bias.PenaltyYear
// suppressed: such a candidate is only accepted with bias.AcceptProb
// per attempt. A candidate at or before the penalty year is accepted
// immediately without consuming an acceptance roll. When every attempt
// is exhausted the result falls back to just after the lower bound.
func (s *Sampler) RecencyBiasedDate(lower, upper time.Time, bias DateBias) time.Time {
	fallback := lower.Add(time.Second)
	maxDays := int(upper.Sub(lower).Hours() / 24)
	if maxDays < 1 {
		maxDays = 1
	}

	for attempt := 0; attempt < bias.MaxAttempts; attempt++ {
		daysBack := int(float64(maxDays) * math.Pow(s.rng.Float64(), bias.Exponent))
		candidate := upper.AddDate(0, 0, -daysBack)
		if candidate.Before(lower) {
			continue
		}
		if candidate.Year() > bias.PenaltyYear {
			if s.rng.Float64() <= bias.AcceptProb {
				return candidate
			}
			continue
		}
		return candidate
	}
	return fallback
}

// BiasedFutureOffset returns a day count in [0, maxDays) drawn via the
// same power transform as the date sampler. The mean lands at
// maxDays/(1+exponent).
func (s *Sampler) BiasedFutureOffset(maxDays int, exponent float64) int {
	return int(float64(maxDays) * math.Pow(s.rng.Float64(), exponent))
}

// PastDate returns a uniform instant within the last `years` years.
func (s *Sampler) PastDate(now time.Time, years int) time.Time {
	span := now.Sub(now.AddDate(-years, 0, 0))
	back := time.Duration(s.rng.Int64N(int64(span)))
	return now.Add(-back)
}

// RecentDate returns a uniform instant within the last `days` days.
func (s *Sampler) RecentDate(now time.Time, days int) time.Time {
	back := time.Duration(s.rng.Int64N(int64(time.Duration(days) * 24 * time.Hour)))
	return now.Add(-back)
}

// DateBetweenYears returns a uniform date with year in [minYear, maxYear].
func (s *Sampler) DateBetweenYears(minYear, maxYear int) time.Time {
	lower := time.Date(minYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	upper := time.Date(maxYear, time.December, 31, 23, 59, 59, 0, time.UTC)
	span := upper.Sub(lower)
	return lower.Add(time.Duration(s.rng.Int64N(int64(span))))
}
