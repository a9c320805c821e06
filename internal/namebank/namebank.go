// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package namebank provides locale-keyed word banks for synthesizing
// person, place, and contact details. Every draw goes through the shared
// randomness context, so the same seed replays the same names.
package namebank

import (
	"fmt"
	"strings"

	"github.com/mackney/gazette-engine/internal/rng"
	"github.com/mackney/gazette-engine/pkg/types"
)

// Bank draws names and contact fields for one locale.
type Bank struct {
	locale string
	data   *localeData
	rng    *rng.Context
}

// New returns a Bank for the locale, falling back to en_US tables when the
// locale has no bank of its own.
func New(locale string, r *rng.Context) *Bank {
	data, ok := locales[locale]
	if !ok {
		data = locales["en_US"]
	}
	return &Bank{locale: locale, data: data, rng: r}
}

// Locale returns the locale this bank was created for.
func (b *Bank) Locale() string { return b.locale }

// FirstName draws a gendered first name.
func (b *Bank) FirstName(g types.Gender) string {
	if g == types.GenderMale {
		return rng.Pick(b.rng, b.data.firstNamesMale)
	}
	return rng.Pick(b.rng, b.data.firstNamesFemale)
}

// LastName draws a surname.
func (b *Bank) LastName() string {
	return rng.Pick(b.rng, b.data.surnames)
}

// PlaceName synthesizes a town or city name from a stem and ending.
func (b *Bank) PlaceName() string {
	return rng.Pick(b.rng, b.data.placeStems) + rng.Pick(b.rng, b.data.placeEndings)
}

// Region draws a county or state name.
func (b *Bank) Region() string {
	return rng.Pick(b.rng, b.data.regions)
}

// Occupation draws a job title.
func (b *Bank) Occupation() string {
	return rng.Pick(b.rng, b.data.occupations)
}

// PhoneNumber expands the locale phone pattern, replacing '#' with digits.
func (b *Bank) PhoneNumber() string {
	return b.expand(rng.Pick(b.rng, b.data.phonePatterns))
}

// Postcode expands the locale postcode pattern: '#' becomes a digit and
// '?' an uppercase letter.
func (b *Bank) Postcode() string {
	return b.expand(rng.Pick(b.rng, b.data.postcodePatterns))
}

// Email builds an address from the person's name and a drawn domain.
func (b *Bank) Email(first, last string) string {
	local := strings.ToLower(sanitize(first) + "." + sanitize(last))
	if b.rng.Bernoulli(0.3) {
		local = fmt.Sprintf("%s%d", local, b.rng.IntBetween(1, 99))
	}
	return local + "@" + rng.Pick(b.rng, b.data.emailDomains)
}

// StreetAddress synthesizes a locale-generic street line, used when no town
// street list is available.
func (b *Bank) StreetAddress() string {
	number := b.rng.IntBetween(1, 250)
	street := rng.Pick(b.rng, b.data.streetWords) + " " + rng.Pick(b.rng, b.data.streetSuffixes)
	return fmt.Sprintf("%d %s", number, street)
}

func (b *Bank) expand(pattern string) string {
	var sb strings.Builder
	for _, c := range pattern {
		switch c {
		case '#':
			sb.WriteByte(byte('0' + b.rng.Intn(10)))
		case '?':
			sb.WriteByte(byte('A' + b.rng.Intn(26)))
		default:
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// sanitize strips characters that do not belong in an email local part.
func sanitize(s string) string {
	var sb strings.Builder
	for _, c := range strings.ToLower(s) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
