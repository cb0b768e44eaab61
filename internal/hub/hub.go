// Package hub is the single entry point the console uses to drive the economy.
// Every operation is one Store.Apply; journaling and metrics follow the commit.
package hub

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"CampusHub/internal/avatar"
	"CampusHub/internal/economy"
	"CampusHub/internal/metrics"
	"CampusHub/internal/model"
	"CampusHub/internal/recorder"
	"CampusHub/internal/router"
	"CampusHub/internal/store"

	"github.com/rs/zerolog"
)

// ErrBusy is returned while an avatar request is still in flight.
var ErrBusy = errors.New("avatar generation already in progress")

// Hub connects the store, the engine and the side channels around them.
type Hub struct {
	Store    *store.Store
	Engine   *economy.Engine
	Recorder recorder.Recorder
	Avatar   avatar.Generator
	log      zerolog.Logger

	mu        sync.Mutex
	lastImage *avatar.Image
	wg        sync.WaitGroup
}

// New creates a Hub. gen may be nil when no image model is configured.
func New(st *store.Store, eng *economy.Engine, rec recorder.Recorder, gen avatar.Generator, log zerolog.Logger) *Hub {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	h := &Hub{
		Store:    st,
		Engine:   eng,
		Recorder: rec,
		Avatar:   gen,
		log:      log.With().Str("component", "hub").Logger(),
	}
	st.Subscribe(metrics.Observe)
	metrics.Observe(st.Snapshot())
	return h
}

// Snapshot returns the current state.
func (h *Hub) Snapshot() model.State {
	return h.Store.Snapshot()
}

// Settle runs transaction settlement for userID.
func (h *Hub) Settle(userID string, amount int, source string, receipt *model.ReceiptMetadata) (economy.Settlement, error) {
	var res economy.Settlement
	next, err := h.Store.Apply(func(s model.State) (model.State, error) {
		var err error
		s, res, err = h.Engine.SettleTransaction(s, userID, amount, source, receipt)
		return s, err
	})
	if err != nil {
		return res, err
	}

	metrics.SettlementsTotal.Inc()
	metrics.BonesAwardedTotal.WithLabelValues("cashback").Add(float64(res.BonesAwarded))
	h.log.Info().Int("amount", amount).Str("source", source).Int("bones", res.BonesAwarded).
		Str("invoice", res.InvoiceID).Msg("transaction settled")

	if err := h.Recorder.RecordSettlement(&recorder.SettlementEvent{
		InvoiceID:       res.InvoiceID,
		Source:          source,
		Amount:          amount,
		BonesAwarded:    res.BonesAwarded,
		StreakTriggered: res.StreakTriggered,
		LifetimeAfter:   next.User.LifetimeEarned,
	}); err != nil {
		h.log.Error().Err(err).Msg("record settlement")
	}
	if res.StreakTriggered {
		h.streakBonus("ACTIVATED", next)
	}
	return res, nil
}

// AdjustTrust applies a trust delta and returns the new audit entry.
func (h *Hub) AdjustTrust(category model.TrustCategory, positive bool, description string) (model.TrustHistoryEntry, error) {
	next, err := h.Store.Apply(func(s model.State) (model.State, error) {
		return h.Engine.AdjustTrust(s, category, positive, description)
	})
	if err != nil {
		return model.TrustHistoryEntry{}, err
	}
	entry := next.User.TrustHistory[0]

	metrics.TrustAdjustmentsTotal.WithLabelValues(string(category), metrics.Direction(entry.Change > 0)).Inc()
	h.log.Info().Str("category", string(category)).Int("change", entry.Change).
		Int("score", entry.ResultingScore).Msg("trust adjusted")

	if err := h.Recorder.RecordTrust(&recorder.TrustEvent{
		Category:       string(category),
		Positive:       entry.Change > 0,
		Change:         entry.Change,
		ResultingScore: entry.ResultingScore,
		Action:         entry.Action,
	}); err != nil {
		h.log.Error().Err(err).Msg("record trust")
	}
	return entry, nil
}

// CheckIn performs the explicit daily check-in. It reports whether a bonus was paid.
func (h *Hub) CheckIn() (bool, error) {
	var paid bool
	next, err := h.Store.Apply(func(s model.State) (model.State, error) {
		s, paid = h.Engine.CheckIn(s)
		return s, nil
	})
	if err != nil || !paid {
		return false, err
	}
	event := "CHECK_IN"
	if next.Home.Streak.Current == 1 {
		event = "ACTIVATED"
	}
	h.streakBonus(event, next)
	return true, nil
}

func (h *Hub) streakBonus(event string, s model.State) {
	metrics.StreakEventsTotal.WithLabelValues(event).Inc()
	metrics.BonesAwardedTotal.WithLabelValues("streak").Add(economy.StreakBonus)
	h.recordStreak(event, economy.StreakBonus, s)
}

func (h *Hub) recordStreak(event string, bonus int, s model.State) {
	if err := h.Recorder.RecordStreak(&recorder.StreakEvent{
		EventType:    event,
		Current:      s.Home.Streak.Current,
		Freezes:      s.Home.Streak.Freezes,
		Bonus:        bonus,
		BalanceAfter: s.Home.BoneBalance,
	}); err != nil {
		h.log.Error().Err(err).Msg("record streak")
	}
}

// SweepStreak ages the streak against the calendar. The scheduler calls it daily.
func (h *Hub) SweepStreak() (economy.SweepOutcome, error) {
	var out economy.SweepOutcome
	next, err := h.Store.Apply(func(s model.State) (model.State, error) {
		s, out = h.Engine.SweepStreak(s)
		return s, nil
	})
	if err != nil {
		return out, err
	}
	if out != economy.SweepNone {
		metrics.StreakEventsTotal.WithLabelValues(string(out)).Inc()
		h.recordStreak(string(out), 0, next)
		h.log.Info().Str("outcome", string(out)).Int("streak", next.Home.Streak.Current).Msg("streak swept")
	}
	return out, nil
}

// Redeem buys a reward from the catalog.
func (h *Hub) Redeem(rewardID string) (model.Reward, error) {
	var reward model.Reward
	next, err := h.Store.Apply(func(s model.State) (model.State, error) {
		var err error
		s, reward, err = h.Engine.RedeemReward(s, rewardID)
		return s, err
	})
	if err != nil {
		return reward, err
	}
	h.log.Info().Str("reward", reward.ID).Int("cost", reward.Cost).Msg("reward redeemed")
	if err := h.Recorder.RecordRedemption(&recorder.RedemptionEvent{
		RewardID:     reward.ID,
		Title:        reward.Title,
		Cost:         reward.Cost,
		BalanceAfter: next.Home.BoneBalance,
	}); err != nil {
		h.log.Error().Err(err).Msg("record redemption")
	}
	return reward, nil
}

// OpenNotifications opens the panel, marking everything read.
func (h *Hub) OpenNotifications() model.State {
	next, _ := h.Store.Apply(func(s model.State) (model.State, error) {
		return router.OpenPanel(s), nil
	})
	return next
}

// TapNotification routes to the notification's destination and closes the panel.
func (h *Hub) TapNotification(id string) (model.Destination, bool, error) {
	var moved bool
	next, err := h.Store.Apply(func(s model.State) (model.State, error) {
		var err error
		s, moved, err = router.Tap(s, id)
		return s, err
	})
	if err != nil {
		return model.Destination{}, false, err
	}
	return next.Nav.Active, moved, nil
}

// DismissNotification deletes a notification without navigating.
func (h *Hub) DismissNotification(id string) error {
	_, err := h.Store.Apply(func(s model.State) (model.State, error) {
		return router.Dismiss(s, id)
	})
	return err
}

// AddTask appends a todo item.
func (h *Hub) AddTask(title string) error {
	_, err := h.Store.Apply(func(s model.State) (model.State, error) {
		return h.Engine.AddTask(s, title)
	})
	return err
}

// ToggleTask flips a todo item.
func (h *Hub) ToggleTask(id string) error {
	_, err := h.Store.Apply(func(s model.State) (model.State, error) {
		return h.Engine.ToggleTask(s, id)
	})
	return err
}

// GenerateAvatar starts an asynchronous image request. With edit set, the previous
// image is sent along for edit-in-place. Failures only reset the processing flag.
func (h *Hub) GenerateAvatar(ctx context.Context, prompt string, edit bool) error {
	if h.Avatar == nil {
		return fmt.Errorf("avatar generation is not configured")
	}
	if prompt == "" {
		return fmt.Errorf("%w: empty prompt", model.ErrInvalidArgument)
	}
	_, err := h.Store.Apply(func(s model.State) (model.State, error) {
		if s.Processing {
			return s, ErrBusy
		}
		s.Processing = true
		return s, nil
	})
	if err != nil {
		return err
	}

	req := avatar.Request{Prompt: prompt}
	if edit {
		h.mu.Lock()
		req.Prior = h.lastImage
		h.mu.Unlock()
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		img, err := h.Avatar.Generate(ctx, req)
		if err != nil {
			metrics.AvatarRequestsTotal.WithLabelValues("error").Inc()
			h.log.Warn().Err(err).Msg("avatar generation failed")
			h.setAvatar("", false)
			return
		}
		metrics.AvatarRequestsTotal.WithLabelValues("ok").Inc()
		h.mu.Lock()
		h.lastImage = &img
		h.mu.Unlock()
		h.setAvatar(img.DataURI(), true)
	}()
	return nil
}

func (h *Hub) setAvatar(uri string, ok bool) {
	_, _ = h.Store.Apply(func(s model.State) (model.State, error) {
		s.Processing = false
		if ok {
			s.User.AvatarURI = uri
		}
		return s, nil
	})
}

// Wait blocks until in-flight avatar requests finish.
func (h *Hub) Wait() {
	h.wg.Wait()
}
