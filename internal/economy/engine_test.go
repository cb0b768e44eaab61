package economy

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"CampusHub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEngine returns an engine with a settable clock and sequential IDs.
func testEngine(now *time.Time) *Engine {
	n := 0
	return &Engine{
		Now: func() time.Time { return *now },
		NewID: func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		},
	}
}

func baseState() model.State {
	return model.State{
		User: model.UserProfile{ID: "u1", Name: "Kabir", Rank: "SCOUT", TrustScore: 50},
		Home: model.HomeEconomy{
			BoneBalance: 100,
			Streak:      model.Streak{Status: model.StreakActive},
			Rewards: []model.Reward{
				{ID: "coffee", Title: "Canteen Coffee", Cost: 40},
				{ID: "freeze", Title: "Streak Freeze", Cost: 60, Effect: model.EffectStreakFreeze},
			},
		},
	}
}

func TestAdjustTrust_DeltaTable(t *testing.T) {
	tests := []struct {
		category model.TrustCategory
		positive bool
		want     int
	}{
		{model.TrustBounty, true, 55},
		{model.TrustBounty, false, 40},
		{model.TrustMoneyPot, true, 58},
		{model.TrustMoneyPot, false, 35},
		{model.TrustGear, true, 60},
		{model.TrustGear, false, 30},
		{model.TrustGeneral, true, 65},
		{model.TrustGeneral, false, 65},
	}
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		e := testEngine(&now)
		s, err := e.AdjustTrust(baseState(), tt.category, tt.positive, "")
		require.NoError(t, err)
		assert.Equal(t, tt.want, s.User.TrustScore, "%s positive=%v", tt.category, tt.positive)
		require.Len(t, s.User.TrustHistory, 1)
		assert.Equal(t, tt.want, s.User.TrustHistory[0].ResultingScore)
	}
}

func TestAdjustTrust_GearNegativeClampsAtZero(t *testing.T) {
	now := time.Now()
	e := testEngine(&now)
	st := baseState()
	st.User.TrustScore = 5

	s, err := e.AdjustTrust(st, model.TrustGear, false, "")
	require.NoError(t, err)
	assert.Equal(t, 0, s.User.TrustScore)
	entry := s.User.TrustHistory[0]
	assert.Equal(t, -20, entry.Change, "nominal delta is recorded")
	assert.Equal(t, 0, entry.ResultingScore)
}

func TestAdjustTrust_Notification(t *testing.T) {
	now := time.Now()
	e := testEngine(&now)

	s, err := e.AdjustTrust(baseState(), model.TrustGear, true, "Tripod returned")
	require.NoError(t, err)
	require.Len(t, s.Notifications, 1)
	n := s.Notifications[0]
	assert.Equal(t, "HUB_RELIABILITY", n.Category)
	assert.Equal(t, model.NotifySuccess, n.Type)
	assert.Equal(t, model.TagProfile, n.Tag)
	assert.Equal(t, "Tripod returned", s.User.TrustHistory[0].Action)

	s, err = e.AdjustTrust(s, model.TrustMoneyPot, false, "")
	require.NoError(t, err)
	assert.Equal(t, "POT_SETTLEMENT", s.Notifications[0].Category)
	assert.Equal(t, model.NotifyAlert, s.Notifications[0].Type)

	s, err = e.AdjustTrust(s, model.TrustBounty, true, "")
	require.NoError(t, err)
	assert.Equal(t, "TRUST_LEDGER", s.Notifications[0].Category)
}

func TestAdjustTrust_UnknownCategory(t *testing.T) {
	now := time.Now()
	e := testEngine(&now)
	st := baseState()

	s, err := e.AdjustTrust(st, model.TrustCategory("KARMA"), true, "")
	require.ErrorIs(t, err, model.ErrInvalidArgument)
	assert.Equal(t, st.User.TrustScore, s.User.TrustScore)
	assert.Empty(t, s.User.TrustHistory)
	assert.Empty(t, s.Notifications)
}

func TestAdjustTrust_BoundsAndAuditOverRandomSequence(t *testing.T) {
	now := time.Now()
	e := testEngine(&now)
	s := baseState()
	cats := []model.TrustCategory{model.TrustBounty, model.TrustMoneyPot, model.TrustGear, model.TrustGeneral}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		before := s
		var err error
		s, err = e.AdjustTrust(s, cats[rng.Intn(len(cats))], rng.Intn(3) > 0, "")
		require.NoError(t, err)
		require.GreaterOrEqual(t, s.User.TrustScore, MinTrust)
		require.LessOrEqual(t, s.User.TrustScore, MaxTrust)
		require.Len(t, s.User.TrustHistory, len(before.User.TrustHistory)+1)
		require.Equal(t, s.User.TrustScore, s.User.TrustHistory[0].ResultingScore)
		if len(before.User.TrustHistory) > 0 {
			require.Equal(t, before.User.TrustHistory, s.User.TrustHistory[1:], "existing entries unchanged")
		}
	}
}
