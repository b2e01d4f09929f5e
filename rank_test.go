package entaudit_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/entaudit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	t.Parallel()

	t.Run("selects highest score as main", func(t *testing.T) {
		t.Parallel()

		merged := []entaudit.MergedEntity{
			{Name: "Plumbers", Score: 0.35},
			{Name: "London", Score: 0.05},
		}

		ranked := entaudit.Rank(merged)

		require.NotNil(t, ranked.Main)
		assert.Equal(t, "Plumbers", ranked.Main.Name)
		assert.InDelta(t, 0.35, ranked.Main.Score, 1e-9)
		require.Len(t, ranked.Subs, 1)
		assert.Equal(t, "London", ranked.Subs[0].Name)
	})

	t.Run("main outranks every sub", func(t *testing.T) {
		t.Parallel()

		merged := []entaudit.MergedEntity{
			{Name: "a", Score: 0.10},
			{Name: "b", Score: 0.40},
			{Name: "c", Score: 0.25},
			{Name: "d", Score: 0.05},
		}

		ranked := entaudit.Rank(merged)

		require.NotNil(t, ranked.Main)
		for _, sub := range ranked.Subs {
			assert.GreaterOrEqual(t, ranked.Main.Score, sub.Score)
		}
	})

	t.Run("subs are in descending score order", func(t *testing.T) {
		t.Parallel()

		merged := []entaudit.MergedEntity{
			{Name: "low", Score: 0.1},
			{Name: "high", Score: 0.9},
			{Name: "mid", Score: 0.5},
		}

		ranked := entaudit.Rank(merged)

		require.Len(t, ranked.Subs, 2)
		assert.Equal(t, "mid", ranked.Subs[0].Name)
		assert.Equal(t, "low", ranked.Subs[1].Name)
	})

	t.Run("ties preserve input order", func(t *testing.T) {
		t.Parallel()

		merged := []entaudit.MergedEntity{
			{Name: "first", Score: 0.2},
			{Name: "second", Score: 0.2},
			{Name: "third", Score: 0.2},
		}

		ranked := entaudit.Rank(merged)

		require.NotNil(t, ranked.Main)
		assert.Equal(t, "first", ranked.Main.Name)
		require.Len(t, ranked.Subs, 2)
		assert.Equal(t, "second", ranked.Subs[0].Name)
		assert.Equal(t, "third", ranked.Subs[1].Name)
	})

	t.Run("caps subs at nine", func(t *testing.T) {
		t.Parallel()

		var merged []entaudit.MergedEntity
		for i := 0; i < 15; i++ {
			merged = append(merged, entaudit.MergedEntity{
				Name:  fmt.Sprintf("e%d", i),
				Score: float64(15-i) / 100,
			})
		}

		ranked := entaudit.Rank(merged)

		assert.Len(t, ranked.Subs, entaudit.MaxSubEntities)
	})

	t.Run("single entity has no subs", func(t *testing.T) {
		t.Parallel()

		ranked := entaudit.Rank([]entaudit.MergedEntity{{Name: "only", Score: 0.4}})

		require.NotNil(t, ranked.Main)
		assert.Equal(t, "only", ranked.Main.Name)
		assert.Empty(t, ranked.Subs)
	})

	t.Run("empty input yields nil main and empty subs", func(t *testing.T) {
		t.Parallel()

		ranked := entaudit.Rank(nil)

		assert.Nil(t, ranked.Main)
		assert.NotNil(t, ranked.Subs)
		assert.Empty(t, ranked.Subs)
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		t.Parallel()

		merged := []entaudit.MergedEntity{
			{Name: "low", Score: 0.1},
			{Name: "high", Score: 0.9},
		}

		_ = entaudit.Rank(merged)

		assert.Equal(t, "low", merged[0].Name)
		assert.Equal(t, "high", merged[1].Name)
	})
}
