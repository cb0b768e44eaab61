package router

import (
	"testing"

	"CampusHub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteText_KeywordTable(t *testing.T) {
	tests := []struct {
		title, message string
		want           string
	}{
		{"GEAR_YIELD_SYNC", "Your tripod was returned", "HUB/GEAR/RENTALS/MY_STOCK"},
		{"gear_yield_sync", "", "HUB/GEAR/RENTALS/MY_STOCK"},
		{"MONEY_POT_ALERT", "Goa trip pot closes tonight", "SQUAD/MONEY_POTS"},
		{"MISSION_DEADLINE", "", "HUB/BOUNTIES/ACCEPTED"},
		{"PROBE_RECEIVED", "", "HUB/GEAR/RENTALS/REQUESTS"},
		{"RECRUITMENT_OPEN", "", "HUB/BOUNTIES/MY_POSTS"},
		{"LOGISTICS_UPDATE", "", "HUB/GEAR/BUY-SELL/MY_ORDERS"},
		{"RENTAL_CONFIRMED", "", "HUB/GEAR/RENTALS"},
		{"MARKET_LISTING", "", "HUB/GEAR/BUY-SELL"},
		{"BOUNTY_CLOSED", "", "HUB/BOUNTIES"},
		{"NEW_INVOICE", "", "HUB/INVOICES"},
		{"SQUAD_INVITE", "", "SQUAD/FIND_SQUADS"},
		{"RANK_UP", "", "LEADERBOARD"},
		{"TRUST_SCORE_DROP", "", "PROFILE"},
	}
	for _, tt := range tests {
		d, ok := RouteText(tt.title, tt.message)
		require.True(t, ok, tt.title)
		assert.Equal(t, tt.want, d.String(), tt.title)
	}
}

func TestRouteText_FirstMatchWins(t *testing.T) {
	// RETURNED (rule 2) outranks GEAR (rule 6)
	d, ok := RouteText("GEAR_UPDATE", "Camera returned")
	require.True(t, ok)
	assert.Equal(t, "MY_STOCK", d.View)

	// BOUNTY in the message loses to a DEADLINE in the title
	d, _ = RouteText("DEADLINE", "bounty payout pending")
	assert.Equal(t, "ACCEPTED", d.SubTab)
}

func TestRouteText_Unrecognized(t *testing.T) {
	_, ok := RouteText("RANDOM_PING", "hello")
	assert.False(t, ok)
}

func TestRoute_TagTakesPriority(t *testing.T) {
	n := model.AppNotification{
		Title:   "PAYMENT_SETTLED",
		Message: "₹150 settled for DSLR Camera Rental",
		Tag:     model.TagInvoices,
	}
	d, ok := Route(n)
	require.True(t, ok)
	assert.Equal(t, "HUB/INVOICES", d.String())

	n.Tag = model.TagNone
	d, ok = Route(n)
	require.True(t, ok)
	assert.Equal(t, "HUB/GEAR/RENTALS", d.String(), "keyword fallback without a tag")
}

func TestEveryTagHasADestination(t *testing.T) {
	for _, r := range keywordRules {
		_, ok := DestinationFor(r.tag)
		assert.True(t, ok, r.tag)
	}
}
