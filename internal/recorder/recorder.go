package recorder

// TrustEvent records one trust score adjustment.
type TrustEvent struct {
	Category       string
	Positive       bool
	Change         int
	ResultingScore int
	Action         string
}

// SettlementEvent records one settled transaction and its cash-back.
type SettlementEvent struct {
	InvoiceID       string
	Source          string
	Amount          int
	BonesAwarded    int
	StreakTriggered bool
	LifetimeAfter   int
}

// StreakEvent records a streak transition.
type StreakEvent struct {
	EventType    string // "ACTIVATED", "CHECK_IN", "AT_RISK", "FREEZE_USED" or "LOST"
	Current      int
	Freezes      int
	Bonus        int
	BalanceAfter int
}

// RedemptionEvent records a reward bought with bones.
type RedemptionEvent struct {
	RewardID     string
	Title        string
	Cost         int
	BalanceAfter int
}

// Recorder journals committed economy transitions for later analysis.
// It is write-only: the hub never restores state from it.
type Recorder interface {
	RecordTrust(evt *TrustEvent) error
	RecordSettlement(evt *SettlementEvent) error
	RecordStreak(evt *StreakEvent) error
	RecordRedemption(evt *RedemptionEvent) error
	Close() error
}
