package doubly_linked_list_test

import (
	"context"
	"encoding/json"
	"iter"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmgrit/doubly-linked-list"
)

func TestIteration(t *testing.T) {
	l := newInts(1, 2, 3)

	t.Run("All", func(t *testing.T) {
		require.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))
		require.Equal(t, []int{1, 2, 3}, slices.Collect(l.All()))
	})

	t.Run("Break", func(t *testing.T) {
		var got []int
		for v := range l.All() {
			if v == 2 {
				break
			}
			got = append(got, v)
		}
		require.Equal(t, []int{1}, got)
	})

	t.Run("Enumerate", func(t *testing.T) {
		var positions, values []int
		for i, v := range l.Enumerate() {
			positions = append(positions, i)
			values = append(values, v)
		}
		require.Equal(t, []int{0, 1, 2}, positions)
		require.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run("Backward", func(t *testing.T) {
		require.Equal(t, []int{3, 2, 1}, slices.Collect(l.Backward()))
	})

	t.Run("Pull", func(t *testing.T) {
		next, stop := iter.Pull(l.All())
		defer stop()
		v, ok := next()
		require.True(t, ok)
		require.Equal(t, 1, v)
	})

	t.Run("Empty", func(t *testing.T) {
		require.Empty(t, slices.Collect(newInts().All()))
		require.Empty(t, slices.Collect(newInts().Backward()))
	})
}

func drain(l *doubly_linked_list.DoublyLinkedList[int]) []int {
	var got []int
	for {
		v, ok := l.Next()
		if !ok {
			return got
		}
		got = append(got, v)
	}
}

func TestNext(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		l := newInts()
		_, ok := l.Next()
		require.False(t, ok)

		l.Add(1)
		v, ok := l.Next()
		require.True(t, ok)
		require.Equal(t, 1, v)
	})

	t.Run("Exhaustion", func(t *testing.T) {
		l := newInts(1, 2, 3)
		require.Equal(t, []int{1, 2, 3}, drain(l))
		_, ok := l.Next()
		require.False(t, ok)

		l.Rewind()
		require.Equal(t, []int{1, 2, 3}, drain(l))
	})

	t.Run("SharedCursor", func(t *testing.T) {
		l := newInts(1, 2, 3, 4)
		v, _ := l.Next()
		require.Equal(t, 1, v)
		require.Equal(t, []int{2, 3, 4}, drain(l))
	})

	t.Run("PopHeadRewinds", func(t *testing.T) {
		l := newInts(1, 2, 3, 4)
		l.Next()
		l.Next()
		_, err := l.PopAt(0)
		require.NoError(t, err)
		require.Equal(t, []int{2, 3, 4}, drain(l))
	})

	t.Run("RemoveHeadRewinds", func(t *testing.T) {
		l := newInts(1, 2, 3)
		l.Next()
		l.Next()
		require.True(t, l.Remove(1))
		require.Equal(t, []int{2, 3}, drain(l))
	})

	t.Run("RemovePendingNode", func(t *testing.T) {
		l := newInts(1, 2, 3, 4)
		l.Next()
		require.True(t, l.Remove(2))
		require.Equal(t, []int{3, 4}, drain(l))
	})

	t.Run("AppendWhileStepping", func(t *testing.T) {
		l := newInts(1)
		l.Next()
		_, ok := l.Next()
		require.False(t, ok)
		l.Add(2)
		_, ok = l.Next()
		require.False(t, ok)
		l.Rewind()
		require.Equal(t, []int{1, 2}, drain(l))
	})

	t.Run("SortRewinds", func(t *testing.T) {
		l := newInts(3, 1, 2)
		l.Next()
		l.Sort()
		require.Equal(t, []int{1, 2, 3}, drain(l))
	})

	t.Run("ClearRewinds", func(t *testing.T) {
		l := newInts(1, 2)
		l.Next()
		l.Clear()
		_, ok := l.Next()
		require.False(t, ok)
		l.Extend(5, 6)
		require.Equal(t, []int{5, 6}, drain(l))
	})
}

func TestConfiguration(t *testing.T) {
	t.Run("FromJSON", func(t *testing.T) {
		var config doubly_linked_list.Configuration[string]
		err := json.Unmarshal([]byte(`{"values":["x","y"],"returnNodes":true}`), &config)
		require.NoError(t, err)

		l, err := doubly_linked_list.NewFromConfiguration(config, func(a, b string) int {
			return len(a) - len(b)
		})
		require.NoError(t, err)
		require.True(t, l.ReturnsNodes())
		require.Equal(t, []string{"x", "y"}, l.Values())
		require.Equal(t, config, l.Configuration())
	})

	t.Run("NoCompare", func(t *testing.T) {
		_, err := doubly_linked_list.NewFromConfiguration[int](doubly_linked_list.Configuration[int]{}, nil)
		require.ErrorIs(t, err, doubly_linked_list.ErrNoCompareFunc)
	})
}

func TestJSON(t *testing.T) {
	t.Run("Marshal", func(t *testing.T) {
		data, err := json.Marshal(newInts(1, 2, 3))
		require.NoError(t, err)
		require.JSONEq(t, `[1,2,3]`, string(data))

		data, err = json.Marshal(newInts())
		require.NoError(t, err)
		require.JSONEq(t, `[]`, string(data))
	})

	t.Run("Unmarshal", func(t *testing.T) {
		l := newInts(9)
		require.NoError(t, json.Unmarshal([]byte(`[4,5]`), l))
		require.Equal(t, []int{4, 5}, l.Values())
		requireLinks(t, l)
	})

	t.Run("UnmarshalInvalid", func(t *testing.T) {
		l := newInts(9)
		require.Error(t, json.Unmarshal([]byte(`["a"]`), l))
		require.Equal(t, []int{9}, l.Values())
	})

	t.Run("UnmarshalZeroValue", func(t *testing.T) {
		var l doubly_linked_list.DoublyLinkedList[int]
		require.ErrorIs(t, l.UnmarshalJSON([]byte(`[1]`)), doubly_linked_list.ErrNoCompareFunc)
	})
}

func TestLocked(t *testing.T) {
	t.Run("Concurrent", func(t *testing.T) {
		locked := doubly_linked_list.NewLocked(newInts())
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				assert.NoError(t, locked.Do(context.Background(), func(l *doubly_linked_list.DoublyLinkedList[int]) {
					l.Add(i)
				}))
			}(i)
		}
		wg.Wait()

		require.NoError(t, locked.Do(context.Background(), func(l *doubly_linked_list.DoublyLinkedList[int]) {
			require.Equal(t, 20, l.Len())
			l.Sort()
			require.Equal(t, 1, l.Count(0))
			v, err := l.At(19)
			require.NoError(t, err)
			require.Equal(t, 19, v)
		}))
	})

	t.Run("Timeout", func(t *testing.T) {
		locked := doubly_linked_list.NewLocked(newInts())
		entered := make(chan struct{})
		release := make(chan struct{})
		done := make(chan struct{})
		go func() {
			defer close(done)
			_ = locked.Do(context.Background(), func(*doubly_linked_list.DoublyLinkedList[int]) {
				close(entered)
				<-release
			})
		}()
		<-entered

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()
		err := locked.Do(ctx, func(*doubly_linked_list.DoublyLinkedList[int]) {
			t.Error("must not run")
		})
		require.ErrorIs(t, err, doubly_linked_list.ErrLockTimeout)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		close(release)
		<-done
	})
}
