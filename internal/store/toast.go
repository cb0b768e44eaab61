package store

import (
	"sync"
	"time"

	"CampusHub/internal/model"

	"github.com/rs/zerolog"
)

// DefaultToastWindow is how long a cash-back toast stays visible.
const DefaultToastWindow = 2 * time.Second

// ToastTimer hides a visible toast after a fixed window.
// A newer toast cancels the pending clear of the previous one.
type ToastTimer struct {
	store  *Store
	window time.Duration
	log    zerolog.Logger

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	unsub   func()
	stopped bool
}

// NewToastTimer subscribes to the store and starts watching for toasts.
func NewToastTimer(st *Store, window time.Duration, log zerolog.Logger) *ToastTimer {
	if window <= 0 {
		window = DefaultToastWindow
	}
	t := &ToastTimer{store: st, window: window, log: log.With().Str("component", "toast").Logger()}
	t.unsub = st.Subscribe(t.observe)
	return t
}

func (t *ToastTimer) observe(s model.State) {
	if !s.Toast.Visible {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || s.Toast.Seq == t.seq {
		return
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	seq := s.Toast.Seq
	t.seq = seq
	t.timer = time.AfterFunc(t.window, func() { t.clear(seq) })
}

func (t *ToastTimer) clear(seq uint64) {
	_, err := t.store.Apply(func(s model.State) (model.State, error) {
		if s.Toast.Seq != seq || !s.Toast.Visible {
			return s, nil
		}
		s.Toast.Visible = false
		return s, nil
	})
	if err != nil {
		t.log.Warn().Err(err).Uint64("seq", seq).Msg("clear toast")
	}
}

// Stop cancels any pending clear and detaches from the store.
func (t *ToastTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.unsub()
}
