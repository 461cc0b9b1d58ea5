package progress

import (
	"context"
	"reflect"
	"sync"
	"testing"
)

// TestKey verifies the "<day>-<id>" completion key format.
func TestKey(t *testing.T) {
	if got := Key(12, 345); got != "12-345" {
		t.Errorf("Key = %q, want 12-345", got)
	}
}

// TestCompletedDays verifies only days marked true are returned, sorted.
func TestCompletedDays(t *testing.T) {
	c := CompletionState{Days: map[int]bool{9: true, 2: true, 5: false}}
	if got, want := c.CompletedDays(), []int{2, 9}; !reflect.DeepEqual(got, want) {
		t.Errorf("CompletedDays = %v, want %v", got, want)
	}
}

// TestMemoryStore verifies set, clear and reset are scoped per user.
func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.SetExercise(ctx, 1, 3, 42, true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetDay(ctx, 1, 3, true); err != nil {
		t.Fatal(err)
	}
	if err := s.SetExercise(ctx, 2, 3, 42, true); err != nil {
		t.Fatal(err)
	}

	st, _ := s.Load(ctx, 1)
	if !st.Exercises["3-42"] || !st.Days[3] {
		t.Errorf("user 1 state = %+v", st)
	}

	if err := s.SetExercise(ctx, 1, 3, 42, false); err != nil {
		t.Fatal(err)
	}
	st, _ = s.Load(ctx, 1)
	if st.Exercises["3-42"] {
		t.Error("exercise should be cleared")
	}

	if err := s.Reset(ctx, 1); err != nil {
		t.Fatal(err)
	}
	st, _ = s.Load(ctx, 1)
	if len(st.Days) != 0 || len(st.Exercises) != 0 {
		t.Errorf("state after reset = %+v", st)
	}

	other, _ := s.Load(ctx, 2)
	if !other.Exercises["3-42"] {
		t.Error("reset of user 1 must not touch user 2")
	}
}

// TestMemoryStoreLoadIsCopy verifies callers cannot modify stored state
// through a loaded value.
func TestMemoryStoreLoadIsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_ = s.SetDay(ctx, 1, 1, true)

	st, _ := s.Load(ctx, 1)
	st.Days[2] = true

	again, _ := s.Load(ctx, 1)
	if again.Days[2] {
		t.Error("stored state changed through loaded copy")
	}
}

// TestMemoryStoreConcurrent verifies concurrent writers do not lose updates.
func TestMemoryStoreConcurrent(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_ = s.SetExercise(ctx, 1, 1, id, true)
		}(i)
	}
	wg.Wait()

	st, _ := s.Load(ctx, 1)
	if len(st.Exercises) != 50 {
		t.Errorf("exercises = %d, want 50", len(st.Exercises))
	}
}
