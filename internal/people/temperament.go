// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package people

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mackney/gazette-engine/internal/rng"
	"github.com/mackney/gazette-engine/pkg/types"
)

// minTemperamentWeight is the floor applied after adjustments so no
// temperament is ever fully excluded.
const minTemperamentWeight = 0.1

// sampleTemperament scores every temperament in the catalog against the
// resident's age, education, and employment, then draws one. Each
// temperament starts at weight 1.0 and accumulates the deltas of matching
// adjustment conditions.
func (g *Generator) sampleTemperament(age int, education string, employment types.EmploymentStatus) (types.Temperament, error) {
	cfg := g.cat.Temperaments
	weights := make([]float64, len(cfg.Catalog))
	for i, t := range cfg.Catalog {
		w := 1.0
		for _, adj := range cfg.Adjustments.Age[t.Type] {
			if matchAge(adj.When, age) {
				w += adj.Delta
			}
		}
		for _, adj := range cfg.Adjustments.Education[t.Type] {
			if matchEducation(adj.When, education) {
				w += adj.Delta
			}
		}
		for _, adj := range cfg.Adjustments.Employment[t.Type] {
			if matchSubstring(adj.When, string(employment)) {
				w += adj.Delta
			}
		}
		if w < minTemperamentWeight {
			w = minTemperamentWeight
		}
		weights[i] = w
	}

	picked, err := rng.WeightedPick(g.rng, cfg.Catalog, weights)
	if err != nil {
		return types.Temperament{}, fmt.Errorf("sampling temperament: %w", err)
	}
	return picked, nil
}

// matchAge evaluates "<N", ">N", and "A-B" (inclusive) conditions.
// A condition that fails to parse matches nothing.
func matchAge(cond string, age int) bool {
	switch {
	case strings.HasPrefix(cond, "<"):
		n, err := strconv.Atoi(cond[1:])
		return err == nil && age < n
	case strings.HasPrefix(cond, ">"):
		n, err := strconv.Atoi(cond[1:])
		return err == nil && age > n
	case strings.Contains(cond, "-"):
		low, high, ok := strings.Cut(cond, "-")
		if !ok {
			return false
		}
		lo, err1 := strconv.Atoi(low)
		hi, err2 := strconv.Atoi(high)
		return err1 == nil && err2 == nil && age >= lo && age <= hi
	}
	return false
}

// matchEducation evaluates the symbolic education conditions. "has_degree"
// is a case-insensitive substring test, so "Some college, no degree"
// deliberately qualifies alongside the actual degrees. "advanced_degree"
// matches only postgraduate levels. Anything else falls back to the
// "|"-separated substring form.
func matchEducation(cond, level string) bool {
	switch cond {
	case "has_degree":
		return strings.Contains(strings.ToLower(level), "degree")
	case "advanced_degree":
		for _, prefix := range []string{"Master's", "Doctoral", "Professional"} {
			if strings.Contains(level, prefix) {
				return true
			}
		}
		return false
	}
	return matchSubstring(cond, level)
}

// matchSubstring tests whether any "|"-separated alternative occurs in the
// value.
func matchSubstring(cond, value string) bool {
	for _, alt := range strings.Split(cond, "|") {
		if alt != "" && strings.Contains(value, alt) {
			return true
		}
	}
	return false
}
