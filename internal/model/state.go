package model

import "errors"

// State is the whole application snapshot owned by the store.
// Transforms never modify a slice of a committed State in place.
type State struct {
	User          UserProfile        `json:"user"`
	Home          HomeEconomy        `json:"home"`
	Invoices      []HubInvoice       `json:"invoices"`
	Notifications []AppNotification  `json:"notifications"`
	Toast         Toast              `json:"toast"`
	Nav           Navigation         `json:"nav"`
	Leaderboard   []LeaderboardEntry `json:"leaderboard"`
	Bounties      []Bounty           `json:"bounties"`
	Processing    bool               `json:"processing"`
}

// Unread counts notifications not yet marked read.
func (s State) Unread() int {
	n := 0
	for _, a := range s.Notifications {
		if !a.IsRead {
			n++
		}
	}
	return n
}

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientBones = errors.New("insufficient bones")
)
