package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts candidates by kind", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddCrawl()
		c.AddCrawl()
		c.AddJump()
		c.SetBest(1.5, 2)

		got := c.Complete()
		require.Equal(t, 3, got.Candidates)
		require.Equal(t, 2, got.Crawls)
		require.Equal(t, 1, got.Jumps)
		require.Equal(t, 1.5, got.BestScore)
		require.Equal(t, 2, got.Ties)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start()
		c.AddJump()
		c.Complete()

		c.Start()
		require.Zero(t, c.Complete().Candidates)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start()
		c.AddCrawl()
		c.SetBest(3, 1)
		require.Equal(t, SelectMetric{}, c.Complete())
	})
}
