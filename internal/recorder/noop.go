package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTrust(_ *TrustEvent) error           { return nil }
func (n *NoopRecorder) RecordSettlement(_ *SettlementEvent) error { return nil }
func (n *NoopRecorder) RecordStreak(_ *StreakEvent) error         { return nil }
func (n *NoopRecorder) RecordRedemption(_ *RedemptionEvent) error { return nil }
func (n *NoopRecorder) Close() error                              { return nil }
