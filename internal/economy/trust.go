package economy

import (
	"fmt"

	"CampusHub/internal/model"
)

const (
	MinTrust = 0
	MaxTrust = 100
)

// trustDeltas is fixed. GENERAL has no negative path.
var trustDeltas = map[model.TrustCategory]struct{ positive, negative int }{
	model.TrustBounty:   {5, -10},
	model.TrustMoneyPot: {8, -15},
	model.TrustGear:     {10, -20},
	model.TrustGeneral:  {15, 15},
}

var defaultActions = map[model.TrustCategory][2]string{
	model.TrustBounty:   {"Bounty delivered", "Bounty abandoned"},
	model.TrustMoneyPot: {"Pot settled on time", "Pot settlement missed"},
	model.TrustGear:     {"Gear returned in condition", "Gear returned damaged or late"},
	model.TrustGeneral:  {"Community commendation", "Community commendation"},
}

// TrustDelta returns the nominal table delta for a category and direction.
func TrustDelta(category model.TrustCategory, positive bool) (int, error) {
	d, ok := trustDeltas[category]
	if !ok {
		return 0, fmt.Errorf("%w: unknown trust category %q", model.ErrInvalidArgument, category)
	}
	if positive {
		return d.positive, nil
	}
	return d.negative, nil
}

// TrustLabel maps a category to the notification category label.
func TrustLabel(category model.TrustCategory) string {
	switch category {
	case model.TrustGear:
		return "HUB_RELIABILITY"
	case model.TrustMoneyPot:
		return "POT_SETTLEMENT"
	default:
		return "TRUST_LEDGER"
	}
}

func clampTrust(v int) int {
	if v < MinTrust {
		return MinTrust
	}
	if v > MaxTrust {
		return MaxTrust
	}
	return v
}

// AdjustTrust moves the trust score by the table delta and appends one audit entry.
// The entry records the nominal delta even when clamping limits the real movement.
func (e *Engine) AdjustTrust(s model.State, category model.TrustCategory, positive bool, description string) (model.State, error) {
	delta, err := TrustDelta(category, positive)
	if err != nil {
		return s, err
	}
	if category == model.TrustGeneral {
		positive = true
	}

	action := description
	if action == "" {
		labels := defaultActions[category]
		if positive {
			action = labels[0]
		} else {
			action = labels[1]
		}
	}

	score := clampTrust(s.User.TrustScore + delta)
	s.User.TrustScore = score
	s.User.TrustHistory = prepend(model.TrustHistoryEntry{
		ID:             e.NewID(),
		Date:           e.Now(),
		Action:         action,
		Change:         delta,
		ResultingScore: score,
	}, s.User.TrustHistory)

	typ := model.NotifyAlert
	if positive {
		typ = model.NotifySuccess
	}
	label := TrustLabel(category)
	s = e.notify(s, label,
		fmt.Sprintf("Trust %+d: %s. Score now %d.", delta, action, score),
		typ, label, model.TagProfile)
	return s, nil
}
