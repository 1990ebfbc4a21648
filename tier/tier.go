// Package tier decides which dashboard features a subscription unlocks.
//
// Tiers are ordered trial < basic < pro < premium and every feature has a
// minimum tier in a static, read-only table. A tier unlocks a feature when
// its rank is at least the feature's minimum. Unknown features are never
// enabled.
package tier

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownTier = errors.New("unknown subscription tier")

// Tier is a subscription level. The numeric value is its rank.
type Tier int

const (
	Trial Tier = iota
	Basic
	Pro
	Premium
)

var tierNames = [...]string{
	Trial:   "trial",
	Basic:   "basic",
	Pro:     "pro",
	Premium: "premium",
}

// All lists the tiers from lowest to highest rank.
func All() []Tier {
	return []Tier{Trial, Basic, Pro, Premium}
}

func (t Tier) Valid() bool {
	return t >= Trial && t <= Premium
}

func (t Tier) String() string {
	if !t.Valid() {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// Rank is the ordinal used for gating comparisons.
func (t Tier) Rank() int {
	return int(t)
}

// AtLeast reports whether t ranks at or above min.
func (t Tier) AtLeast(min Tier) bool {
	return t.Valid() && t.Rank() >= min.Rank()
}

// ParseTier accepts the profile-store spelling of a tier, case-insensitive.
func ParseTier(s string) (Tier, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range tierNames {
		if n == name {
			return Tier(i), nil
		}
	}
	return Trial, fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

func (t Tier) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTier, int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(b []byte) error {
	v, err := ParseTier(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
