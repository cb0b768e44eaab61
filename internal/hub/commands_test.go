package hub

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleCommand_Settle(t *testing.T) {
	f := newFixture(t, nil)

	out := f.hub.HandleCommand("settle ₹150 DSLR Camera Rental")
	assert.Contains(t, out, "PAID")
	assert.Contains(t, out, "+15 bones")
	assert.Contains(t, out, "Streak activated")

	assert.Contains(t, f.hub.HandleCommand("settle abc Coffee"), "bad amount")
	assert.Contains(t, f.hub.HandleCommand("settle 10"), "usage")
	assert.Contains(t, f.hub.HandleCommand("settle -5 Refund"), "❌")
}

func TestHandleCommand_TrustAndRedeem(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, "Trust -20 → 0 (Gear returned damaged or late)", f.hub.HandleCommand("trust gear -"))
	assert.Contains(t, f.hub.HandleCommand("trust karma +"), "❌")
	assert.Contains(t, f.hub.HandleCommand("trust gear"), "usage")

	assert.Contains(t, f.hub.HandleCommand("redeem yacht"), "Not found")
	assert.Contains(t, f.hub.HandleCommand("redeem COFFEE"), "redeemed for 40 bones. Balance 10")
	assert.Contains(t, f.hub.HandleCommand("redeem coffee"), "Not enough bones")
}

func TestHandleCommand_Notifications(t *testing.T) {
	f := newFixture(t, nil)

	out := f.hub.HandleCommand("inbox")
	assert.Contains(t, out, "Notifications (2)")
	assert.Contains(t, out, " 1. [")
	assert.True(t, f.hub.Snapshot().Nav.PanelOpen)

	assert.Equal(t, "Dismissed", f.hub.HandleCommand("dismiss 2"))
	assert.Contains(t, f.hub.HandleCommand("tap 5"), "Not found")
	assert.Equal(t, "→ HUB/GEAR/RENTALS/MY_STOCK", f.hub.HandleCommand("tap 1"))

	s := f.hub.Snapshot()
	assert.False(t, s.Nav.PanelOpen)
	require.Len(t, s.Notifications, 1)
}

func TestHandleCommand_Tasks(t *testing.T) {
	f := newFixture(t, nil)

	assert.Equal(t, "No tasks", f.hub.HandleCommand("tasks"))
	out := f.hub.HandleCommand("task add Return tripod")
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "Return tripod")

	id := f.hub.Snapshot().Home.Tasks[0].ID
	assert.Contains(t, f.hub.HandleCommand("task done "+id), "[x]")
	assert.Contains(t, f.hub.HandleCommand("task done nope"), "Not found")
}

func TestHandleCommand_Misc(t *testing.T) {
	f := newFixture(t, nil)

	assert.Empty(t, f.hub.HandleCommand("   "))
	assert.True(t, strings.HasPrefix(f.hub.HandleCommand("help"), "Commands:"))
	assert.True(t, strings.HasPrefix(f.hub.HandleCommand("/whatever"), "Commands:"))
	assert.Contains(t, f.hub.HandleCommand("status"), "Bones: 50")
	assert.Contains(t, f.hub.HandleCommand("profile"), "Trust ledger")
	assert.Contains(t, f.hub.HandleCommand("board"), "Leaderboard")
	assert.Equal(t, "No open bounties", f.hub.HandleCommand("bounties"))
	assert.Contains(t, f.hub.HandleCommand("checkin"), "Day 1 streak")
	assert.Equal(t, "Already checked in today", f.hub.HandleCommand("checkin"))
	assert.Contains(t, f.hub.HandleCommand("avatar hacker"), "not configured")
}
