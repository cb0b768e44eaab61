package model

import "time"

// NotificationType drives the styling of a notification.
type NotificationType string

const (
	NotifyInfo    NotificationType = "INFO"
	NotifyAlert   NotificationType = "ALERT"
	NotifySuccess NotificationType = "SUCCESS"
)

// NotificationTag names the destination a notification opens.
// An empty tag means the router falls back to keyword matching.
type NotificationTag string

const (
	TagNone            NotificationTag = ""
	TagAcceptedMission NotificationTag = "ACCEPTED_MISSION"
	TagGearStock       NotificationTag = "GEAR_STOCK"
	TagGearRequests    NotificationTag = "GEAR_REQUESTS"
	TagBountyPosts     NotificationTag = "BOUNTY_POSTS"
	TagMarketOrders    NotificationTag = "MARKET_ORDERS"
	TagRentals         NotificationTag = "RENTALS"
	TagMarket          NotificationTag = "MARKET"
	TagBounties        NotificationTag = "BOUNTIES"
	TagInvoices        NotificationTag = "INVOICES"
	TagMoneyPots       NotificationTag = "MONEY_POTS"
	TagSquads          NotificationTag = "SQUADS"
	TagLeaderboard     NotificationTag = "LEADERBOARD"
	TagProfile         NotificationTag = "PROFILE"
)

// AppNotification is an alert shown in the notification panel.
type AppNotification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	IsRead    bool             `json:"is_read"`
	Type      NotificationType `json:"type"`
	Category  string           `json:"category,omitempty"`
	Tag       NotificationTag  `json:"tag,omitempty"`
}

// Destination is a location in the app: tab, then optional section, sub-tab and view.
type Destination struct {
	Tab     string `json:"tab"`
	Section string `json:"section,omitempty"`
	SubTab  string `json:"sub_tab,omitempty"`
	View    string `json:"view,omitempty"`
}

// String renders the destination as a slash-separated path.
func (d Destination) String() string {
	s := d.Tab
	for _, part := range []string{d.Section, d.SubTab, d.View} {
		if part != "" {
			s += "/" + part
		}
	}
	return s
}

// Navigation is the active location and whether the notification panel is open.
type Navigation struct {
	Active    Destination `json:"active"`
	PanelOpen bool        `json:"panel_open"`
}
