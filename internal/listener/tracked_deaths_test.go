package listener

import (
	"testing"
	"time"

	"github.com/ArmaRealms/ToolStats/internal/testing/leaktest"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTrackedDeaths(t *testing.T) {
	t.Run("mark and forget", func(t *testing.T) {
		deaths := NewTrackedDeaths(8, time.Minute)
		id := uuid.New()

		assert.False(t, deaths.Attributed(id))
		deaths.MarkAttributed(id)
		assert.True(t, deaths.Attributed(id))
		assert.Equal(t, 1, deaths.Len())

		deaths.Forget(id)
		assert.False(t, deaths.Attributed(id))
	})

	t.Run("capacity evicts oldest", func(t *testing.T) {
		deaths := NewTrackedDeaths(2, time.Minute)
		first, second, third := uuid.New(), uuid.New(), uuid.New()

		deaths.MarkAttributed(first)
		deaths.MarkAttributed(second)
		deaths.MarkAttributed(third)

		assert.False(t, deaths.Attributed(first))
		assert.True(t, deaths.Attributed(second))
		assert.True(t, deaths.Attributed(third))
	})

	t.Run("entries expire", func(t *testing.T) {
		deaths := NewTrackedDeaths(8, 10*time.Millisecond)
		id := uuid.New()
		deaths.MarkAttributed(id)

		assert.Eventually(t, func() bool {
			return !deaths.Attributed(id)
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("bounded under churn", func(t *testing.T) {
		deaths := NewTrackedDeaths(128, 0)

		leaktest.CheckNoMemoryLeak(t, 2.0, func() {
			for i := 0; i < 100_000; i++ {
				deaths.MarkAttributed(uuid.New())
			}
		})
		assert.Equal(t, 128, deaths.Len())
	})
}
