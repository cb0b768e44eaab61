package economy

import (
	"fmt"
	"strings"

	"CampusHub/internal/model"
)

// RedeemReward spends bones on a catalog item and applies its effect.
func (e *Engine) RedeemReward(s model.State, rewardID string) (model.State, model.Reward, error) {
	var reward model.Reward
	found := false
	for _, r := range s.Home.Rewards {
		if strings.EqualFold(r.ID, rewardID) {
			reward, found = r, true
			break
		}
	}
	if !found {
		return s, model.Reward{}, fmt.Errorf("%w: reward %q", model.ErrNotFound, rewardID)
	}
	if s.Home.BoneBalance < reward.Cost {
		return s, reward, fmt.Errorf("%w: %s costs %d, balance %d",
			model.ErrInsufficientBones, reward.Title, reward.Cost, s.Home.BoneBalance)
	}

	s.Home.BoneBalance -= reward.Cost
	s = e.record(s, model.TxSpend, reward.Cost, "Redeemed: "+reward.Title)
	if reward.Effect == model.EffectStreakFreeze {
		s.Home.Streak.Freezes++
	}
	s = e.notify(s, "REWARD_REDEEMED",
		fmt.Sprintf("%s redeemed for %d bones. Balance %d.", reward.Title, reward.Cost, s.Home.BoneBalance),
		model.NotifySuccess, "REWARDS", model.TagProfile)
	return s, reward, nil
}
