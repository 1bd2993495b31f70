package sim

import (
	"errors"
	"math/rand"
	"time"
)

const (
	DefaultTrials   = 10000
	DefaultHandSize = 5
)

var (
	ErrNoConditions = errors.New("input has no conditions to test")
	ErrHandTooLarge = errors.New("hand size exceeds deck size")
)

// Runner estimates how often a deck's opening hand satisfies each condition
// by repeatedly shuffling and drawing without replacement.
type Runner struct {
	Trials   int
	HandSize int
	// Seed fixes the shuffle sequence for reproducible runs; zero means
	// time-seeded.
	Seed int64
}

// Result reports success rates for one run.
type Result struct {
	Trials       int       `json:"trials"`
	HandSize     int       `json:"hand_size"`
	PerCondition []float64 `json:"per_condition"`
	// Overall is the fraction of hands satisfying at least one condition.
	Overall float64 `json:"overall"`
}

// Run draws Trials hands from the input's deck and evaluates every condition
// against each hand.
func (r Runner) Run(in *Input) (Result, error) {
	trials := r.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}
	handSize := r.HandSize
	if handSize <= 0 {
		handSize = DefaultHandSize
	}
	if len(in.Conditions) == 0 {
		return Result{}, ErrNoConditions
	}
	if handSize > in.Deck.Len() {
		return Result{}, ErrHandTooLarge
	}

	seed := r.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cards := in.Deck.List()
	hits := make([]int, len(in.Conditions))
	anyHits := 0

	for t := 0; t < trials; t++ {
		rng.Shuffle(len(cards), func(i, j int) {
			cards[i], cards[j] = cards[j], cards[i]
		})
		hand := cards[:handSize]

		any := false
		for i, c := range in.Conditions {
			if Evaluate(c, hand) {
				hits[i]++
				any = true
			}
		}
		if any {
			anyHits++
		}
	}

	per := make([]float64, len(hits))
	for i, h := range hits {
		per[i] = float64(h) / float64(trials)
	}
	return Result{
		Trials:       trials,
		HandSize:     handSize,
		PerCondition: per,
		Overall:      float64(anyHits) / float64(trials),
	}, nil
}
