package progress

import (
	"context"
	"sort"
	"strconv"
	"sync"
)

// Key is the completion-map key for an exercise instance on a day.
func Key(day, instanceID int) string {
	return strconv.Itoa(day) + "-" + strconv.Itoa(instanceID)
}

// CompletionState is what a user has marked done. It is owned by a Store,
// never by the program.
type CompletionState struct {
	Exercises map[string]bool `json:"exercises"`
	Days      map[int]bool    `json:"days"`
}

// NewCompletionState returns an empty state with initialized maps.
func NewCompletionState() CompletionState {
	return CompletionState{
		Exercises: make(map[string]bool),
		Days:      make(map[int]bool),
	}
}

// CompletedDays returns the completed day numbers in ascending order.
func (c CompletionState) CompletedDays() []int {
	days := make([]int, 0, len(c.Days))
	for d, done := range c.Days {
		if done {
			days = append(days, d)
		}
	}
	sort.Ints(days)
	return days
}

// Store persists completion state per user.
type Store interface {
	Load(ctx context.Context, userID int) (CompletionState, error)
	SetExercise(ctx context.Context, userID, day, instanceID int, done bool) error
	SetDay(ctx context.Context, userID, day int, done bool) error
	Reset(ctx context.Context, userID int) error
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	mu    sync.Mutex
	users map[int]CompletionState
}

// Compile-time check: *MemoryStore satisfies Store.
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[int]CompletionState)}
}

// Load returns a copy of the user's state.
func (m *MemoryStore) Load(_ context.Context, userID int) (CompletionState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := NewCompletionState()
	st, ok := m.users[userID]
	if !ok {
		return out, nil
	}
	for k, v := range st.Exercises {
		out.Exercises[k] = v
	}
	for k, v := range st.Days {
		out.Days[k] = v
	}
	return out, nil
}

// SetExercise marks or clears one exercise.
func (m *MemoryStore) SetExercise(_ context.Context, userID, day, instanceID int, done bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.state(userID)
	if done {
		st.Exercises[Key(day, instanceID)] = true
	} else {
		delete(st.Exercises, Key(day, instanceID))
	}
	return nil
}

// SetDay marks or clears a whole day.
func (m *MemoryStore) SetDay(_ context.Context, userID, day int, done bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.state(userID)
	if done {
		st.Days[day] = true
	} else {
		delete(st.Days, day)
	}
	return nil
}

// Reset clears everything for the user.
func (m *MemoryStore) Reset(_ context.Context, userID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.users, userID)
	return nil
}

func (m *MemoryStore) state(userID int) CompletionState {
	st, ok := m.users[userID]
	if !ok {
		st = NewCompletionState()
		m.users[userID] = st
	}
	return st
}
