package hub

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"CampusHub/internal/economy"
	"CampusHub/internal/model"
	"CampusHub/internal/notifier"
)

const helpText = `Commands:
  status                         balance, streak, rewards
  profile                        trust ledger and history
  settle <amount> <label...>     settle a payment, earn 10% cash-back
  trust <category> <+|-> [note]  BOUNTY, MONEY_POT, GEAR or GENERAL
  checkin                        daily check-in
  redeem <reward-id>             buy a reward with bones
  inbox                          open notifications
  tap <n|id>                     open a notification's destination
  dismiss <n|id>                 delete a notification
  board                          leaderboard
  bounties                       campus bounty feed
  tasks | task add <title> | task done <id>
  avatar <prompt> | avatar-edit <prompt>
  quit`

// HandleCommand processes a console command and returns a reply.
func (h *Hub) HandleCommand(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	cmd := strings.ToLower(strings.TrimPrefix(fields[0], "/"))
	args := fields[1:]

	switch cmd {
	case "status":
		s := h.Snapshot()
		return notifier.FormatStatus(&s)

	case "profile":
		s := h.Snapshot()
		return notifier.FormatProfile(&s, 10)

	case "settle":
		if len(args) < 2 {
			return "usage: settle <amount> <label...>"
		}
		amount, err := strconv.Atoi(strings.TrimPrefix(args[0], "₹"))
		if err != nil {
			return fmt.Sprintf("❌ bad amount %q", args[0])
		}
		res, err := h.Settle(h.Snapshot().User.ID, amount, strings.Join(args[1:], " "), nil)
		if err != nil {
			return failure(err)
		}
		s := h.Snapshot()
		return notifier.FormatSettlement(res, &s)

	case "trust":
		if len(args) < 2 || (args[1] != "+" && args[1] != "-") {
			return "usage: trust <category> <+|-> [note]"
		}
		entry, err := h.AdjustTrust(model.TrustCategory(strings.ToUpper(args[0])), args[1] == "+", strings.Join(args[2:], " "))
		if err != nil {
			return failure(err)
		}
		return fmt.Sprintf("Trust %+d → %d (%s)", entry.Change, entry.ResultingScore, entry.Action)

	case "checkin":
		paid, err := h.CheckIn()
		if err != nil {
			return failure(err)
		}
		if !paid {
			return "Already checked in today"
		}
		s := h.Snapshot()
		return fmt.Sprintf("🔥 Day %d streak, +%d bones", s.Home.Streak.Current, economy.StreakBonus)

	case "redeem":
		if len(args) != 1 {
			return "usage: redeem <reward-id>"
		}
		reward, err := h.Redeem(args[0])
		if err != nil {
			return failure(err)
		}
		return fmt.Sprintf("🎁 %s redeemed for %d bones. Balance %d", reward.Title, reward.Cost, h.Snapshot().Home.BoneBalance)

	case "inbox":
		s := h.OpenNotifications()
		return notifier.FormatNotifications(&s)

	case "tap", "dismiss":
		if len(args) != 1 {
			return fmt.Sprintf("usage: %s <n|id>", cmd)
		}
		id, err := h.resolveNotification(args[0])
		if err != nil {
			return failure(err)
		}
		if cmd == "dismiss" {
			if err := h.DismissNotification(id); err != nil {
				return failure(err)
			}
			return "Dismissed"
		}
		dest, moved, err := h.TapNotification(id)
		if err != nil {
			return failure(err)
		}
		if !moved {
			return "No destination for that notification"
		}
		return "→ " + dest.String()

	case "board":
		return notifier.FormatStandings(economy.Standings(h.Snapshot()))

	case "bounties":
		s := h.Snapshot()
		return notifier.FormatBounties(&s)

	case "tasks":
		s := h.Snapshot()
		return notifier.FormatTasks(&s)

	case "task":
		if len(args) < 2 {
			return "usage: task add <title> | task done <id>"
		}
		var err error
		switch args[0] {
		case "add":
			err = h.AddTask(strings.Join(args[1:], " "))
		case "done":
			err = h.ToggleTask(args[1])
		default:
			return "usage: task add <title> | task done <id>"
		}
		if err != nil {
			return failure(err)
		}
		s := h.Snapshot()
		return notifier.FormatTasks(&s)

	case "avatar", "avatar-edit":
		if err := h.GenerateAvatar(context.Background(), strings.Join(args, " "), cmd == "avatar-edit"); err != nil {
			return failure(err)
		}
		return "🎨 Generating avatar…"

	default:
		return helpText
	}
}

// resolveNotification accepts a 1-based panel position or a notification ID.
func (h *Hub) resolveNotification(ref string) (string, error) {
	list := h.Snapshot().Notifications
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(list) {
			return "", fmt.Errorf("%w: notification #%d", model.ErrNotFound, n)
		}
		return list[n-1].ID, nil
	}
	return ref, nil
}

func failure(err error) string {
	switch {
	case errors.Is(err, model.ErrInsufficientBones):
		return "❌ Not enough bones: " + err.Error()
	case errors.Is(err, model.ErrNotFound):
		return "❌ Not found: " + err.Error()
	default:
		return "❌ " + err.Error()
	}
}
