package economy

import (
	"fmt"
	"math"
	"time"

	"CampusHub/internal/model"
)

// StreakBonus is the bone credit for an activated or extended streak.
const StreakBonus = 15

// TriggerDailyStreak pays the mining bonus once per reset-to-zero of the streak.
// It does not look at the calendar; SweepStreak is what brings the streak back to zero.
func (e *Engine) TriggerDailyStreak(s model.State) (model.State, bool) {
	if s.Home.Streak.Current != 0 {
		return s, false
	}
	s.Home.BoneBalance += StreakBonus
	s.Home.Streak.Current = 1
	s.Home.Streak.Status = model.StreakActive
	s.Home.Streak.LastCheckIn = e.Now()
	s = earn(s, StreakBonus)
	s = e.notify(s, "DAILY_MINING",
		fmt.Sprintf("Streak activated. +%d bones mined.", StreakBonus),
		model.NotifySuccess, "STREAK", model.TagNone)
	return s, true
}

// CheckIn is the explicit daily check-in. It extends the streak at most once per calendar day.
// Missed days not yet swept are settled first: each needs a freeze, otherwise the streak
// restarts at 1.
func (e *Engine) CheckIn(s model.State) (model.State, bool) {
	if s.Home.Streak.Current == 0 {
		return e.TriggerDailyStreak(s)
	}
	now := e.Now()
	days := daysBetween(s.Home.Streak.LastCheckIn, now)
	if days <= 0 {
		return s, false
	}
	if missed := days - 1; missed > 0 {
		if s.Home.Streak.Freezes < missed {
			s = e.loseStreak(s)
			return e.TriggerDailyStreak(s)
		}
		s.Home.Streak.Freezes -= missed
		s = e.notify(s, "STREAK_FREEZE",
			fmt.Sprintf("%d freeze(s) covered your missed days. %d left.", missed, s.Home.Streak.Freezes),
			model.NotifyInfo, "STREAK", model.TagNone)
	}
	s.Home.BoneBalance += StreakBonus
	s.Home.Streak.Current++
	s.Home.Streak.Status = model.StreakActive
	s.Home.Streak.LastCheckIn = now
	s = earn(s, StreakBonus)
	s = e.notify(s, "DAILY_MINING",
		fmt.Sprintf("Day %d streak. +%d bones mined.", s.Home.Streak.Current, StreakBonus),
		model.NotifySuccess, "STREAK", model.TagNone)
	return s, true
}

// SweepOutcome reports what SweepStreak did.
type SweepOutcome string

const (
	SweepNone       SweepOutcome = "NONE"
	SweepAtRisk     SweepOutcome = "AT_RISK"
	SweepFreezeUsed SweepOutcome = "FREEZE_USED"
	SweepLost       SweepOutcome = "LOST"
)

// SweepStreak ages the streak against the calendar. One missed day puts it at risk;
// two or more consume a freeze, or reset the streak to zero when none is left.
func (e *Engine) SweepStreak(s model.State) (model.State, SweepOutcome) {
	st := s.Home.Streak
	if st.Current == 0 {
		return s, SweepNone
	}
	now := e.Now()
	days := daysBetween(st.LastCheckIn, now)
	switch {
	case days <= 0:
		return s, SweepNone
	case days == 1:
		if st.Status == model.StreakAtRisk {
			return s, SweepNone
		}
		s.Home.Streak.Status = model.StreakAtRisk
		s = e.notify(s, "STREAK_AT_RISK",
			fmt.Sprintf("Check in today to keep your %d-day streak.", st.Current),
			model.NotifyInfo, "STREAK", model.TagNone)
		return s, SweepAtRisk
	case st.Freezes > 0:
		s.Home.Streak.Freezes--
		s.Home.Streak.Status = model.StreakAtRisk
		s.Home.Streak.LastCheckIn = now.AddDate(0, 0, -1)
		s = e.notify(s, "STREAK_FREEZE",
			fmt.Sprintf("A freeze covered your missed day. %d left.", s.Home.Streak.Freezes),
			model.NotifyInfo, "STREAK", model.TagNone)
		return s, SweepFreezeUsed
	default:
		return e.loseStreak(s), SweepLost
	}
}

func (e *Engine) loseStreak(s model.State) model.State {
	ended := s.Home.Streak.Current
	s.Home.Streak.Current = 0
	s.Home.Streak.Status = model.StreakActive
	return e.notify(s, "STREAK_LOST",
		fmt.Sprintf("Your %d-day streak ended.", ended),
		model.NotifyAlert, "STREAK", model.TagNone)
}

// daysBetween counts calendar days from a to b in b's location.
func daysBetween(a, b time.Time) int {
	if a.IsZero() {
		return math.MaxInt32
	}
	loc := b.Location()
	a = a.In(loc)
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, loc)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, loc)
	return int(math.Round(db.Sub(da).Hours() / 24))
}
