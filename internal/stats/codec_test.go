package stats

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/metrics"
)

func TestCodec_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewCodec()

	t.Run("integer counters", func(t *testing.T) {
		for _, kind := range []domain.StatKind{domain.StatPlayerKills, domain.StatMobKills} {
			for _, n := range []int{0, 1, 7, 123456} {
				item, err := c.SetInt(domain.NewItem("IRON_SWORD"), kind, n)
				require.NoError(t, err)

				got, err := c.Int(ctx, item, kind)
				require.NoError(t, err)
				assert.Equal(t, n, got)
			}
		}
	})

	t.Run("armor damage accumulator", func(t *testing.T) {
		for _, v := range []float64{0, 0.5, 3.5, 1234.125} {
			item, err := c.SetFloat(domain.NewItem("IRON_HELMET"), domain.StatArmorDamage, v)
			require.NoError(t, err)

			got, err := c.Float(ctx, item, domain.StatArmorDamage)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})
}

func TestCodec_AbsentReadsZero(t *testing.T) {
	ctx := context.Background()
	c := NewCodec()
	item := domain.NewItem("DIAMOND_SWORD")

	n, err := c.Int(ctx, item, domain.StatMobKills)
	require.NoError(t, err)
	assert.Zero(t, n)

	f, err := c.Float(ctx, domain.NewItem("DIAMOND_BOOTS"), domain.StatArmorDamage)
	require.NoError(t, err)
	assert.Zero(t, f)
}

func TestCodec_Increment(t *testing.T) {
	ctx := context.Background()
	c := NewCodec()

	for _, n := range []int{0, 1, 5, 40} {
		item := domain.NewItem("NETHERITE_AXE")
		for i := 0; i < n; i++ {
			var err error
			item, _, err = c.Increment(ctx, item, domain.StatMobKills)
			require.NoError(t, err)
		}

		got, err := c.Int(ctx, item, domain.StatMobKills)
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestCodec_DoesNotMutateInput(t *testing.T) {
	ctx := context.Background()
	c := NewCodec()

	original, err := c.SetInt(domain.NewItem("IRON_SWORD"), domain.StatPlayerKills, 3)
	require.NoError(t, err)

	updated, n, err := c.Increment(ctx, original, domain.StatPlayerKills)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	before, _ := c.Int(ctx, original, domain.StatPlayerKills)
	after, _ := c.Int(ctx, updated, domain.StatPlayerKills)
	assert.Equal(t, 3, before)
	assert.Equal(t, 4, after)
}

func TestCodec_AccumulateIsOrderIndependent(t *testing.T) {
	ctx := context.Background()
	c := NewCodec()
	pairs := [][2]float64{{3.5, 1.25}, {0.1, 0.2}, {7, 0.75}}

	for _, p := range pairs {
		a, _, err := c.Accumulate(ctx, domain.NewItem("GOLDEN_CHESTPLATE"), domain.StatArmorDamage, p[0])
		require.NoError(t, err)
		_, totalA, err := c.Accumulate(ctx, a, domain.StatArmorDamage, p[1])
		require.NoError(t, err)

		b, _, err := c.Accumulate(ctx, domain.NewItem("GOLDEN_CHESTPLATE"), domain.StatArmorDamage, p[1])
		require.NoError(t, err)
		_, totalB, err := c.Accumulate(ctx, b, domain.StatArmorDamage, p[0])
		require.NoError(t, err)

		assert.InDelta(t, totalA, totalB, 1e-9)
		assert.InDelta(t, p[0]+p[1], totalA, 1e-9)
	}
}

func TestCodec_FractionalDamageIsNotRounded(t *testing.T) {
	ctx := context.Background()
	c := NewCodec()

	item, total, err := c.Accumulate(ctx, domain.NewItem("LEATHER_BOOTS"), domain.StatArmorDamage, 0.333)
	require.NoError(t, err)
	assert.Equal(t, 0.333, total)

	stored := item.Meta.Data[domain.StatArmorDamage.Key()]
	assert.Equal(t, 0.333, stored)
}

func TestCodec_IntegersWidenToDecimal(t *testing.T) {
	ctx := context.Background()
	c := NewCodec()

	for _, raw := range []any{int(4), int32(4), int64(4), float32(4)} {
		item := domain.NewItem("IRON_CHESTPLATE")
		item.Meta.Data[domain.StatArmorDamage.Key()] = raw

		got, err := c.Float(ctx, item, domain.StatArmorDamage)
		require.NoError(t, err)
		assert.Equal(t, 4.0, got, "%T", raw)

		_, total, err := c.Accumulate(ctx, item, domain.StatArmorDamage, 0.5)
		require.NoError(t, err)
		assert.Equal(t, 4.5, total, "%T", raw)
	}
}

func TestCodec_CorruptCounterReadsZero(t *testing.T) {
	ctx := context.Background()
	c := NewCodec()

	item := domain.NewItem("STONE_SWORD")
	item.Meta.Data[domain.StatMobKills.Key()] = "seven"
	item.Meta.Data[domain.StatPlayerKills.Key()] = nil

	before := testutil.ToFloat64(metrics.Anomalies.WithLabelValues(metrics.AnomalyCorruptCounter))

	n, err := c.Int(ctx, item, domain.StatMobKills)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = c.Int(ctx, item, domain.StatPlayerKills)
	require.NoError(t, err)
	assert.Zero(t, n)

	updated, n, err := c.Increment(ctx, item, domain.StatMobKills)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, updated.Meta.Data[domain.StatMobKills.Key()])

	after := testutil.ToFloat64(metrics.Anomalies.WithLabelValues(metrics.AnomalyCorruptCounter))
	assert.Equal(t, before+3, after)
}

func TestCodec_MissingMetadata(t *testing.T) {
	ctx := context.Background()
	c := NewCodec()
	air := domain.NewItem(domain.MaterialAir)

	_, err := c.Int(ctx, air, domain.StatMobKills)
	assert.True(t, IsMissingMetadata(err))

	_, _, err = c.Accumulate(ctx, air, domain.StatArmorDamage, 1)
	assert.ErrorIs(t, err, domain.ErrMissingMetadata)

	_, err = c.SetInt(air, domain.StatMobKills, 1)
	assert.ErrorIs(t, err, domain.ErrMissingMetadata)
}

func TestCodec_WrongKind(t *testing.T) {
	ctx := context.Background()
	c := NewCodec()
	item := domain.NewItem("IRON_SWORD")

	_, err := c.Int(ctx, item, domain.StatArmorDamage)
	assert.ErrorIs(t, err, domain.ErrUnknownStat)

	_, err = c.Float(ctx, item, domain.StatMobKills)
	assert.ErrorIs(t, err, domain.ErrUnknownStat)

	_, err = c.SetInt(item, domain.StatKind("blocks-mined"), 1)
	assert.ErrorIs(t, err, domain.ErrUnknownStat)
}

func TestCodec_KeysAreNamespacedPerStatistic(t *testing.T) {
	c := NewCodec()
	item, err := c.SetInt(domain.NewItem("TRIDENT"), domain.StatPlayerKills, 2)
	require.NoError(t, err)
	item, err = c.SetInt(item, domain.StatMobKills, 9)
	require.NoError(t, err)

	ctx := context.Background()
	pk, _ := c.Int(ctx, item, domain.StatPlayerKills)
	mk, _ := c.Int(ctx, item, domain.StatMobKills)
	assert.Equal(t, 2, pk)
	assert.Equal(t, 9, mk)
	assert.Len(t, item.Meta.Data, 2)
}
