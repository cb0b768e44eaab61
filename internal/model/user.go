package model

import "time"

// TrustCategory selects a row of the trust delta table.
type TrustCategory string

const (
	TrustBounty   TrustCategory = "BOUNTY"
	TrustMoneyPot TrustCategory = "MONEY_POT"
	TrustGear     TrustCategory = "GEAR"
	TrustGeneral  TrustCategory = "GENERAL"
)

// TrustHistoryEntry is one immutable line of the trust audit trail.
// Change is the nominal table delta, which can overstate the real movement at 0 or 100.
type TrustHistoryEntry struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	Action         string    `json:"action"`
	Change         int       `json:"change"`
	ResultingScore int       `json:"resulting_score"`
}

// TransactionKind classifies a ledger record.
type TransactionKind string

const (
	TxSpend  TransactionKind = "SPEND"
	TxEarn   TransactionKind = "EARN"
	TxReward TransactionKind = "REWARD"
)

// TransactionRecord is an immutable entry of the user's history.
type TransactionRecord struct {
	ID          string          `json:"id"`
	Kind        TransactionKind `json:"kind"`
	Amount      int             `json:"amount"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
}

// UserProfile is the single local user. History slices are newest first.
type UserProfile struct {
	ID             string              `json:"id"`
	Name           string              `json:"name"`
	Rank           string              `json:"rank"`
	TrustScore     int                 `json:"trust_score"`
	TrustHistory   []TrustHistoryEntry `json:"trust_history"`
	LifetimeEarned int                 `json:"lifetime_earned"`
	History        []TransactionRecord `json:"history"`
	AvatarURI      string              `json:"avatar_uri,omitempty"`
}

// LeaderboardEntry is a seeded competitor on the campus board.
type LeaderboardEntry struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Bones  int    `json:"bones"`
}

// Bounty is an item of the seeded bounty feed.
type Bounty struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Reward int    `json:"reward"`
	Status string `json:"status"`
}
