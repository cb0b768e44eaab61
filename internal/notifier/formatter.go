package notifier

import (
	"fmt"
	"strings"
	"time"

	"CampusHub/internal/economy"
	"CampusHub/internal/model"
)

// FormatStatus renders the home economy summary.
func FormatStatus(s *model.State) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🦴 CampusHub | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("User: %s (%s) %s\n", s.User.Name, s.User.ID, s.User.Rank))
	b.WriteString(fmt.Sprintf("Bones: %d | Lifetime: %d\n", s.Home.BoneBalance, s.User.LifetimeEarned))
	b.WriteString(fmt.Sprintf("Trust: %d/100\n", s.User.TrustScore))

	st := s.Home.Streak
	b.WriteString(fmt.Sprintf("Streak: %d day(s) %s | Freezes: %d\n", st.Current, st.Status, st.Freezes))
	if !st.LastCheckIn.IsZero() {
		b.WriteString(fmt.Sprintf("Last check-in: %s\n", st.LastCheckIn.Format("2006-01-02 15:04")))
	}
	b.WriteString(fmt.Sprintf("Location: %s | Unread: %d\n", s.Nav.Active, s.Unread()))

	if s.Toast.Visible {
		b.WriteString(fmt.Sprintf("\n✨ %s\n", s.Toast.Message))
	}

	if len(s.Home.Rewards) > 0 {
		b.WriteString("\nRewards:\n")
		for _, r := range s.Home.Rewards {
			b.WriteString(fmt.Sprintf("  %-10s %4d  %s\n", r.ID, r.Cost, r.Title))
		}
	}
	return b.String()
}

// FormatProfile renders the trust audit trail and recent transactions.
func FormatProfile(s *model.State, limit int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("👤 %s | trust %d | %s\n", s.User.Name, s.User.TrustScore, s.User.Rank))
	if s.User.AvatarURI != "" {
		b.WriteString(fmt.Sprintf("Avatar: %d bytes encoded\n", len(s.User.AvatarURI)))
	}

	b.WriteString("\nTrust ledger:\n")
	if len(s.User.TrustHistory) == 0 {
		b.WriteString("  (empty)\n")
	}
	for i, e := range s.User.TrustHistory {
		if i == limit {
			break
		}
		b.WriteString(fmt.Sprintf("  %s  %+4d → %3d  %s\n", e.Date.Format("01-02 15:04"), e.Change, e.ResultingScore, e.Action))
	}

	b.WriteString("\nHistory:\n")
	if len(s.User.History) == 0 {
		b.WriteString("  (empty)\n")
	}
	for i, tx := range s.User.History {
		if i == limit {
			break
		}
		b.WriteString(fmt.Sprintf("  %s  %-6s %6d  %s\n", tx.Timestamp.Format("01-02 15:04"), tx.Kind, tx.Amount, tx.Description))
	}
	return b.String()
}

// FormatSettlement summarises one settlement.
func FormatSettlement(res economy.Settlement, s *model.State) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("✅ Invoice %s PAID\n", res.InvoiceID))
	b.WriteString(fmt.Sprintf("Cash-back: +%d bones (lifetime %d)\n", res.BonesAwarded, s.User.LifetimeEarned))
	if res.StreakTriggered {
		b.WriteString(fmt.Sprintf("🔥 Streak activated: +%d bones\n", economy.StreakBonus))
	}
	return b.String()
}

// FormatNotifications lists the notification panel, newest first, numbered from 1.
func FormatNotifications(s *model.State) string {
	if len(s.Notifications) == 0 {
		return "🔔 No notifications"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔔 Notifications (%d)\n", len(s.Notifications)))
	for i, n := range s.Notifications {
		b.WriteString(fmt.Sprintf("%2d. [%s] %s: %s (%s)\n", i+1, n.Type, n.Title, n.Message, n.Timestamp.Format("15:04")))
	}
	return b.String()
}

// FormatStandings renders the leaderboard.
func FormatStandings(rows []economy.Standing) string {
	var b strings.Builder
	b.WriteString("🏆 Leaderboard\n")
	for _, r := range rows {
		marker := " "
		if r.IsSelf {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("%s%2d. %-16s %6d  %s\n", marker, r.Position, r.Name, r.Bones, r.Rank))
	}
	return b.String()
}

// FormatBounties lists the campus bounty feed.
func FormatBounties(s *model.State) string {
	if len(s.Bounties) == 0 {
		return "No open bounties"
	}
	var b strings.Builder
	b.WriteString("🎯 Bounties\n")
	for _, x := range s.Bounties {
		b.WriteString(fmt.Sprintf("  %-6s %-9s %4d  %s\n", x.ID, x.Status, x.Reward, x.Title))
	}
	return b.String()
}

// FormatTasks lists the todo items.
func FormatTasks(s *model.State) string {
	if len(s.Home.Tasks) == 0 {
		return "No tasks"
	}
	var b strings.Builder
	for _, t := range s.Home.Tasks {
		box := "[ ]"
		if t.Done {
			box = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", box, t.ID, t.Title))
	}
	return b.String()
}
