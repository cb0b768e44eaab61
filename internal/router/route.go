// Package router maps notifications to app destinations and drives the notification panel.
package router

import (
	"strings"

	"CampusHub/internal/model"
)

// Tabs and sections of the app.
const (
	TabHub         = "HUB"
	TabSquad       = "SQUAD"
	TabLeaderboard = "LEADERBOARD"
	TabProfile     = "PROFILE"
	TabHome        = "HOME"
)

var destinations = map[model.NotificationTag]model.Destination{
	model.TagAcceptedMission: {Tab: TabHub, Section: "BOUNTIES", SubTab: "ACCEPTED"},
	model.TagGearStock:       {Tab: TabHub, Section: "GEAR", SubTab: "RENTALS", View: "MY_STOCK"},
	model.TagGearRequests:    {Tab: TabHub, Section: "GEAR", SubTab: "RENTALS", View: "REQUESTS"},
	model.TagBountyPosts:     {Tab: TabHub, Section: "BOUNTIES", SubTab: "MY_POSTS"},
	model.TagMarketOrders:    {Tab: TabHub, Section: "GEAR", SubTab: "BUY-SELL", View: "MY_ORDERS"},
	model.TagRentals:         {Tab: TabHub, Section: "GEAR", SubTab: "RENTALS"},
	model.TagMarket:          {Tab: TabHub, Section: "GEAR", SubTab: "BUY-SELL"},
	model.TagBounties:        {Tab: TabHub, Section: "BOUNTIES"},
	model.TagInvoices:        {Tab: TabHub, Section: "INVOICES"},
	model.TagMoneyPots:       {Tab: TabSquad, Section: "MONEY_POTS"},
	model.TagSquads:          {Tab: TabSquad, Section: "FIND_SQUADS"},
	model.TagLeaderboard:     {Tab: TabLeaderboard},
	model.TagProfile:         {Tab: TabProfile},
}

// keywordRules is the legacy text heuristic, first match wins.
var keywordRules = []struct {
	keywords []string
	tag      model.NotificationTag
}{
	{[]string{"MISSION", "WORK", "TIMEOUT", "DEADLINE"}, model.TagAcceptedMission},
	{[]string{"YIELD", "STOCK", "RETURNED"}, model.TagGearStock},
	{[]string{"REQUEST", "PROBE"}, model.TagGearRequests},
	{[]string{"POST", "RECRUITMENT", "APPLICANT"}, model.TagBountyPosts},
	{[]string{"LOGISTICS", "ORDER", "TRANSIT"}, model.TagMarketOrders},
	{[]string{"RENTAL", "GEAR"}, model.TagRentals},
	{[]string{"MARKET", "ASSET"}, model.TagMarket},
	{[]string{"BOUNTY"}, model.TagBounties},
	{[]string{"INVOICE", "PAYMENT", "RECEIPT", "LEDGER"}, model.TagInvoices},
	{[]string{"POT", "SETTLEMENT"}, model.TagMoneyPots},
	{[]string{"SQUAD"}, model.TagSquads},
	{[]string{"RANK", "LEADERBOARD"}, model.TagLeaderboard},
	{[]string{"TRUST", "PROFILE"}, model.TagProfile},
}

// DestinationFor returns the destination bound to a tag.
func DestinationFor(tag model.NotificationTag) (model.Destination, bool) {
	d, ok := destinations[tag]
	return d, ok
}

// Classify picks a tag from free text using the keyword table.
func Classify(title, message string) model.NotificationTag {
	text := strings.ToUpper(title + " " + message)
	for _, r := range keywordRules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.tag
			}
		}
	}
	return model.TagNone
}

// RouteText routes by keywords only.
func RouteText(title, message string) (model.Destination, bool) {
	return DestinationFor(Classify(title, message))
}

// Route uses the notification's tag and falls back to its text.
func Route(n model.AppNotification) (model.Destination, bool) {
	if d, ok := DestinationFor(n.Tag); ok {
		return d, true
	}
	return RouteText(n.Title, n.Message)
}
