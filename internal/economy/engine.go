// Package economy holds the pure state transitions of the bone economy.
// Every method takes a snapshot and returns a new one; nothing here touches shared state.
package economy

import (
	"time"

	"CampusHub/internal/model"

	"github.com/google/uuid"
)

// Engine carries the clock and ID source used to stamp new records.
type Engine struct {
	Now   func() time.Time
	NewID func() string
}

// New returns an Engine using the wall clock and random UUIDs.
func New() *Engine {
	return &Engine{Now: time.Now, NewID: uuid.NewString}
}

func prepend[T any](item T, list []T) []T {
	out := make([]T, 0, len(list)+1)
	out = append(out, item)
	return append(out, list...)
}

func (e *Engine) notify(s model.State, title, message string, typ model.NotificationType, category string, tag model.NotificationTag) model.State {
	s.Notifications = prepend(model.AppNotification{
		ID:        e.NewID(),
		Title:     title,
		Message:   message,
		Timestamp: e.Now(),
		Type:      typ,
		Category:  category,
		Tag:       tag,
	}, s.Notifications)
	return s
}

// earn credits lifetime earnings and keeps the rank label in step with them.
func earn(s model.State, bones int) model.State {
	s.User.LifetimeEarned += bones
	s.User.Rank = RankFor(s.User.LifetimeEarned)
	return s
}

func (e *Engine) record(s model.State, kind model.TransactionKind, amount int, description string) model.State {
	s.User.History = prepend(model.TransactionRecord{
		ID:          e.NewID(),
		Kind:        kind,
		Amount:      amount,
		Description: description,
		Timestamp:   e.Now(),
	}, s.User.History)
	return s
}
