package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"CampusHub/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedState() model.State {
	return model.State{
		User: model.UserProfile{ID: "u1", TrustScore: 50},
		Home: model.HomeEconomy{BoneBalance: 10},
	}
}

func TestApply_Commits(t *testing.T) {
	st := New(seedState())
	next, err := st.Apply(func(s model.State) (model.State, error) {
		s.Home.BoneBalance += 5
		return s, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 15, next.Home.BoneBalance)
	assert.Equal(t, 15, st.Snapshot().Home.BoneBalance)
	assert.Equal(t, uint64(1), st.Version())
}

func TestApply_ErrorLeavesState(t *testing.T) {
	st := New(seedState())
	boom := errors.New("boom")
	got, err := st.Apply(func(s model.State) (model.State, error) {
		s.Home.BoneBalance = 999
		return s, boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 10, got.Home.BoneBalance)
	assert.Equal(t, 10, st.Snapshot().Home.BoneBalance)
	assert.Zero(t, st.Version())
}

func TestApply_PanicLeavesState(t *testing.T) {
	st := New(seedState())
	_, err := st.Apply(func(s model.State) (model.State, error) {
		panic("bad transform")
	})
	require.Error(t, err)
	assert.Equal(t, 10, st.Snapshot().Home.BoneBalance)

	// the lock was released
	_, err = st.Apply(func(s model.State) (model.State, error) { return s, nil })
	assert.NoError(t, err)
}

func TestApply_SerialisesConcurrentTransforms(t *testing.T) {
	st := New(seedState())
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = st.Apply(func(s model.State) (model.State, error) {
				s.Home.BoneBalance++
				return s, nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 110, st.Snapshot().Home.BoneBalance)
}

func TestSubscribe(t *testing.T) {
	st := New(seedState())
	var seen []int
	cancel := st.Subscribe(func(s model.State) { seen = append(seen, s.Home.BoneBalance) })

	inc := func(s model.State) (model.State, error) {
		s.Home.BoneBalance++
		return s, nil
	}
	_, _ = st.Apply(inc)
	_, _ = st.Apply(func(s model.State) (model.State, error) { return s, errors.New("no") })
	cancel()
	_, _ = st.Apply(inc)

	assert.Equal(t, []int{11}, seen)
}

func TestReset(t *testing.T) {
	st := New(seedState())
	_, _ = st.Apply(func(s model.State) (model.State, error) {
		s.User.TrustScore = 1
		return s, nil
	})
	st.Reset(seedState())
	assert.Equal(t, 50, st.Snapshot().User.TrustScore)
}

func showToast(st *Store, amount int) {
	_, _ = st.Apply(func(s model.State) (model.State, error) {
		s.Toast = model.Toast{Visible: true, Amount: amount, Seq: s.Toast.Seq + 1}
		return s, nil
	})
}

func TestToastTimer_ClearsAfterWindow(t *testing.T) {
	st := New(seedState())
	tt := NewToastTimer(st, 20*time.Millisecond, zerolog.Nop())
	defer tt.Stop()

	showToast(st, 15)
	assert.True(t, st.Snapshot().Toast.Visible)
	require.Eventually(t, func() bool { return !st.Snapshot().Toast.Visible }, time.Second, 5*time.Millisecond)
	assert.Equal(t, 15, st.Snapshot().Toast.Amount)
}

func TestToastTimer_NewToastPreemptsOld(t *testing.T) {
	st := New(seedState())
	tt := NewToastTimer(st, 200*time.Millisecond, zerolog.Nop())
	defer tt.Stop()

	showToast(st, 1)
	time.Sleep(100 * time.Millisecond)
	showToast(st, 2)
	time.Sleep(150 * time.Millisecond)

	// past the first toast's window, still inside the second one
	snap := st.Snapshot()
	assert.True(t, snap.Toast.Visible)
	assert.Equal(t, 2, snap.Toast.Amount)

	require.Eventually(t, func() bool { return !st.Snapshot().Toast.Visible }, time.Second, 5*time.Millisecond)
}

func TestToastTimer_StopCancels(t *testing.T) {
	st := New(seedState())
	tt := NewToastTimer(st, 20*time.Millisecond, zerolog.Nop())
	showToast(st, 3)
	tt.Stop()
	time.Sleep(60 * time.Millisecond)
	assert.True(t, st.Snapshot().Toast.Visible)
}
