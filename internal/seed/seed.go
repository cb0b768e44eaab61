// Package seed builds the boot snapshot from YAML.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"CampusHub/internal/model"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed boot.yaml
var bootYAML []byte

type file struct {
	User struct {
		ID             string `yaml:"id"`
		Name           string `yaml:"name"`
		Rank           string `yaml:"rank"`
		TrustScore     int    `yaml:"trust_score"`
		LifetimeEarned int    `yaml:"lifetime_earned"`
	} `yaml:"user"`
	Home struct {
		BoneBalance int `yaml:"bone_balance"`
		Streak      struct {
			Current int `yaml:"current"`
			Freezes int `yaml:"freezes"`
			DaysAgo int `yaml:"last_check_in_days_ago"`
		} `yaml:"streak"`
		Rewards []struct {
			ID     string `yaml:"id"`
			Title  string `yaml:"title"`
			Cost   int    `yaml:"cost"`
			Effect string `yaml:"effect"`
		} `yaml:"rewards"`
		Tasks []struct {
			ID    string `yaml:"id"`
			Title string `yaml:"title"`
			Done  bool   `yaml:"done"`
		} `yaml:"tasks"`
	} `yaml:"home"`
	Leaderboard []struct {
		UserID string `yaml:"user_id"`
		Name   string `yaml:"name"`
		Bones  int    `yaml:"bones"`
	} `yaml:"leaderboard"`
	Bounties []struct {
		ID     string `yaml:"id"`
		Title  string `yaml:"title"`
		Reward int    `yaml:"reward"`
		Status string `yaml:"status"`
	} `yaml:"bounties"`
	Notifications []struct {
		Title      string `yaml:"title"`
		Message    string `yaml:"message"`
		Type       string `yaml:"type"`
		MinutesAgo int    `yaml:"minutes_ago"`
	} `yaml:"notifications"`
}

// Default returns the embedded boot snapshot, stamped relative to now.
func Default(now time.Time) (model.State, error) {
	return Parse(bootYAML, now)
}

// Load reads a boot snapshot from path, or the embedded one when path is empty.
func Load(path string, now time.Time) (model.State, error) {
	if path == "" {
		return Default(now)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return model.State{}, fmt.Errorf("read seed: %w", err)
	}
	return Parse(data, now)
}

// Parse decodes and validates a boot snapshot. Seeded notifications carry no routing tag,
// so the router falls back to their text.
func Parse(data []byte, now time.Time) (model.State, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return model.State{}, fmt.Errorf("parse seed: %w", err)
	}
	if f.User.ID == "" {
		return model.State{}, fmt.Errorf("%w: seed user.id is required", model.ErrInvalidArgument)
	}
	if f.User.TrustScore < 0 || f.User.TrustScore > 100 {
		return model.State{}, fmt.Errorf("%w: seed trust_score %d outside [0,100]", model.ErrInvalidArgument, f.User.TrustScore)
	}

	s := model.State{
		User: model.UserProfile{
			ID:             f.User.ID,
			Name:           f.User.Name,
			Rank:           f.User.Rank,
			TrustScore:     f.User.TrustScore,
			LifetimeEarned: f.User.LifetimeEarned,
		},
		Home: model.HomeEconomy{
			BoneBalance: f.Home.BoneBalance,
			Streak: model.Streak{
				Current: f.Home.Streak.Current,
				Freezes: f.Home.Streak.Freezes,
				Status:  model.StreakActive,
			},
		},
		Nav: model.Navigation{Active: model.Destination{Tab: "HOME"}},
	}
	if s.Home.Streak.Current > 0 {
		s.Home.Streak.LastCheckIn = now.AddDate(0, 0, -f.Home.Streak.DaysAgo)
	}

	for _, r := range f.Home.Rewards {
		if r.Cost < 0 {
			return model.State{}, fmt.Errorf("%w: reward %q has negative cost", model.ErrInvalidArgument, r.ID)
		}
		s.Home.Rewards = append(s.Home.Rewards, model.Reward{
			ID: r.ID, Title: r.Title, Cost: r.Cost, Effect: model.RewardEffect(r.Effect),
		})
	}
	for _, t := range f.Home.Tasks {
		s.Home.Tasks = append(s.Home.Tasks, model.Task{ID: t.ID, Title: t.Title, Done: t.Done})
	}
	for _, l := range f.Leaderboard {
		s.Leaderboard = append(s.Leaderboard, model.LeaderboardEntry{UserID: l.UserID, Name: l.Name, Bones: l.Bones})
	}
	for _, b := range f.Bounties {
		s.Bounties = append(s.Bounties, model.Bounty{ID: b.ID, Title: b.Title, Reward: b.Reward, Status: b.Status})
	}
	for _, n := range f.Notifications {
		typ := model.NotificationType(n.Type)
		if typ == "" {
			typ = model.NotifyInfo
		}
		s.Notifications = append(s.Notifications, model.AppNotification{
			ID:        uuid.NewString(),
			Title:     n.Title,
			Message:   n.Message,
			Timestamp: now.Add(-time.Duration(n.MinutesAgo) * time.Minute),
			Type:      typ,
		})
	}
	return s, nil
}
