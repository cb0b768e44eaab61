// Package metrics exposes Prometheus instruments for the bone economy.
package metrics

import (
	"CampusHub/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "campushub"

var (
	SettlementsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "settlements_total",
		Help:      "Transactions settled through the hub.",
	})

	BonesAwardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bones_awarded_total",
			Help:      "Bones credited, by source.",
		},
		[]string{"source"},
	)

	TrustAdjustmentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trust_adjustments_total",
			Help:      "Trust score adjustments by category and direction.",
		},
		[]string{"category", "direction"},
	)

	StreakEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "streak_events_total",
			Help:      "Streak transitions by event type.",
		},
		[]string{"event"},
	)

	AvatarRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "avatar_requests_total",
			Help:      "Generative avatar requests by outcome.",
		},
		[]string{"outcome"},
	)

	TrustScore = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "trust_score",
		Help:      "Current trust score.",
	})

	BoneBalance = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "bone_balance",
		Help:      "Current spendable bone balance.",
	})

	UnreadNotifications = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "unread_notifications",
		Help:      "Notifications not yet read.",
	})
)

// Observe refreshes the gauges from a committed snapshot. It is meant as a store subscriber.
func Observe(s model.State) {
	TrustScore.Set(float64(s.User.TrustScore))
	BoneBalance.Set(float64(s.Home.BoneBalance))
	UnreadNotifications.Set(float64(s.Unread()))
}

// Direction labels a trust adjustment.
func Direction(positive bool) string {
	if positive {
		return "positive"
	}
	return "negative"
}
