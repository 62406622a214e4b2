package report

import (
	"encoding/json"
	"fmt"
)

type Tier int

const (
	TierLow Tier = iota
	TierMedium
	TierHigh
)

const (
	MediumThreshold = 60.0
	HighThreshold   = 80.0
)

// Classify maps a score onto a tier. Threshold values belong to the higher tier.
func Classify(score float64) Tier {
	switch {
	case score >= HighThreshold:
		return TierHigh
	case score >= MediumThreshold:
		return TierMedium
	default:
		// NaN lands here too
		return TierLow
	}
}

// ScoreBadge returns the tier used to colour a single session score.
// Sessions without a score (or a zero score) get no badge.
func ScoreBadge(score *float64) *Tier {
	if score == nil || *score == 0 {
		return nil
	}
	t := Classify(*score)
	return &t
}

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierMedium:
		return "medium"
	case TierHigh:
		return "high"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParseTier is the inverse of String
func ParseTier(s string) (Tier, error) {
	switch s {
	case "low":
		return TierLow, nil
	case "medium":
		return TierMedium, nil
	case "high":
		return TierHigh, nil
	}
	return TierLow, fmt.Errorf("unknown tier %q", s)
}

func (t Tier) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Tier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTier(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
