// Package engine implements the exact breeding probability calculators:
// stat-slot resolution, the perfect-stat distribution, temperament and
// talent inheritance, and the explanation builder that narrates each
// number. Everything here is pure combinatorics; nothing is sampled.
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/hatchforge/brood-api/internal/engine Engine

import (
	"context"
)

// Engine exposes the three breeding calculators. Implementations are
// stateless and safe for concurrent use; every call is a deterministic
// function of its input.
type Engine interface {
	// CalculateStatDistribution produces the full probability mass
	// function over perfect-stat count 0..6, plus the exact-match
	// probability of the target spread when one is given.
	CalculateStatDistribution(ctx context.Context, input *StatDistributionInput) (*StatDistributionOutput, error)

	// CalculateTemperamentInheritance resolves which parent's temperament
	// passes, and with what probability, from the temper-stone state.
	CalculateTemperamentInheritance(ctx context.Context, input *TemperamentInheritanceInput) (*TemperamentInheritanceOutput, error)

	// CalculateTalentInheritance resolves the hidden-vs-regular talent
	// split for the donor parent.
	CalculateTalentInheritance(ctx context.Context, input *TalentInheritanceInput) (*TalentInheritanceOutput, error)
}

// New returns the production calculator.
func New() Engine {
	return &calculator{}
}

type calculator struct{}

var _ Engine = (*calculator)(nil)
