package lore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/utils"
)

type mockTemplates struct {
	mock.Mock
}

func (m *mockTemplates) LoreTemplate(kind domain.StatKind, raw bool) (string, bool) {
	args := m.Called(kind, raw)
	return args.String(0), args.Bool(1)
}

func (m *mockTemplates) IsLoreEnabled(kind domain.StatKind, material domain.Material) bool {
	args := m.Called(kind, material)
	return args.Bool(0)
}

func killTemplates(enabled bool) *mockTemplates {
	m := &mockTemplates{}
	m.On("LoreTemplate", domain.StatMobKills, false).Return("§7Mob kills: §f", true)
	m.On("LoreTemplate", domain.StatMobKills, true).Return("§7Mob kills: §f{kills}", true)
	m.On("LoreTemplate", domain.StatArmorDamage, false).Return("§7Damage taken: §f", true)
	m.On("LoreTemplate", domain.StatArmorDamage, true).Return("§7Damage taken: §f{damage}", true)
	m.On("IsLoreEnabled", mock.Anything, mock.Anything).Return(enabled)
	return m
}

func newRenderer(src TemplateSource) *Renderer {
	return NewRenderer(src, utils.NewNumberFormat(language.AmericanEnglish))
}

func TestReplaceLine(t *testing.T) {
	t.Run("nil description starts a new one", func(t *testing.T) {
		assert.Equal(t, []string{"Kills: 1"}, ReplaceLine(nil, "Kills: ", "Kills: 1"))
	})

	t.Run("replaces first matching line in place", func(t *testing.T) {
		in := []string{"Crafted by Steve", "Kills: 7", "Enchanted", "Kills: 99"}
		out := ReplaceLine(in, "Kills: ", "Kills: 8")

		assert.Equal(t, []string{"Crafted by Steve", "Kills: 8", "Enchanted", "Kills: 99"}, out)
		assert.Equal(t, "Kills: 7", in[1], "input must not be modified")
	})

	t.Run("appends when nothing matches", func(t *testing.T) {
		in := []string{"Crafted by Steve"}
		out := ReplaceLine(in, "Kills: ", "Kills: 1")

		assert.Equal(t, []string{"Crafted by Steve", "Kills: 1"}, out)
		assert.Len(t, in, 1)
	})

	t.Run("empty description is kept as a description", func(t *testing.T) {
		assert.Equal(t, []string{"Kills: 1"}, ReplaceLine([]string{}, "Kills: ", "Kills: 1"))
	})
}

func TestRender_NewDescription(t *testing.T) {
	r := newRenderer(killTemplates(true))

	out, err := r.Render(context.Background(), domain.NewItem("IRON_SWORD"), domain.StatMobKills, 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"§7Mob kills: §f1"}, out.Lore())
}

func TestRender_IsIdempotentOnPosition(t *testing.T) {
	r := newRenderer(killTemplates(true))
	ctx := context.Background()

	item := domain.NewItem("IRON_SWORD")
	item.Meta.Lore = []string{"Soulbound", "§7Mob kills: §f7", "Sharp"}

	for v := 8; v <= 12; v++ {
		var err error
		item, err = r.Render(ctx, item, domain.StatMobKills, float64(v))
		require.NoError(t, err)
		assert.Len(t, item.Lore(), 3)
	}
	assert.Equal(t, []string{"Soulbound", "§7Mob kills: §f12", "Sharp"}, item.Lore())
}

func TestRender_FormatsByKind(t *testing.T) {
	r := newRenderer(killTemplates(true))
	ctx := context.Background()

	kills, err := r.Render(ctx, domain.NewItem("IRON_SWORD"), domain.StatMobKills, 1500)
	require.NoError(t, err)
	assert.Equal(t, []string{"§7Mob kills: §f1,500"}, kills.Lore())

	armor, err := r.Render(ctx, domain.NewItem("IRON_HELMET"), domain.StatArmorDamage, 3.5)
	require.NoError(t, err)
	assert.Equal(t, []string{"§7Damage taken: §f3.50"}, armor.Lore())
}

func TestRender_DisabledLeavesDescription(t *testing.T) {
	r := newRenderer(killTemplates(false))

	item := domain.NewItem("IRON_SWORD")
	item.Meta.Lore = []string{"Soulbound"}

	out, err := r.Render(context.Background(), item, domain.StatMobKills, 3)

	require.NoError(t, err)
	assert.Equal(t, []string{"Soulbound"}, out.Lore())
}

func TestRender_MissingTemplate(t *testing.T) {
	m := &mockTemplates{}
	m.On("LoreTemplate", domain.StatPlayerKills, mock.Anything).Return("", false)
	r := newRenderer(m)

	item := domain.NewItem("IRON_SWORD")
	out, err := r.Render(context.Background(), item, domain.StatPlayerKills, 1)

	assert.ErrorIs(t, err, domain.ErrMissingTemplate)
	assert.Nil(t, out.Lore())
	m.AssertNotCalled(t, "IsLoreEnabled", mock.Anything, mock.Anything)
}

func TestRender_MissingMetadata(t *testing.T) {
	r := newRenderer(killTemplates(true))

	_, err := r.Render(context.Background(), domain.NewItem(domain.MaterialAir), domain.StatMobKills, 1)

	assert.ErrorIs(t, err, domain.ErrMissingMetadata)
}
