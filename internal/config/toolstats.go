package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/item"
	"github.com/ArmaRealms/ToolStats/internal/logger"
	"github.com/ArmaRealms/ToolStats/internal/utils"
)

// ToolStats mirrors config.yml: description templates, per-statistic switches
// and number formatting. It is read-only once loaded.
type ToolStats struct {
	Enabled      EnabledConfig      `yaml:"enabled"`
	Messages     MessagesConfig     `yaml:"messages"`
	NumberFormat NumberFormatConfig `yaml:"number-format"`

	classifier *item.Classifier
}

// EnabledConfig holds the description switches. Kill switches are keyed by
// item family (sword, axe, trident, mace, bow); an absent key counts as enabled.
type EnabledConfig struct {
	PlayerKills map[string]bool `yaml:"player-kills"`
	MobKills    map[string]bool `yaml:"mob-kills"`
	ArmorDamage *bool           `yaml:"armor-damage"`
}

// MessagesConfig holds the description templates. A nil template is reported
// as missing when an item needs it.
type MessagesConfig struct {
	Kills       KillMessages `yaml:"kills"`
	DamageTaken *string      `yaml:"damage-taken"`
}

// KillMessages holds the kill counter templates
type KillMessages struct {
	Player *string `yaml:"player"`
	Mob    *string `yaml:"mob"`
}

// NumberFormatConfig selects the locale used to render numbers
type NumberFormatConfig struct {
	Locale string `yaml:"locale" validate:"omitempty,bcp47_language_tag"`
}

// DefaultToolStats returns the shipped configuration
func DefaultToolStats() *ToolStats {
	player, mob, damage := DefaultPlayerKillsMessage, DefaultMobKillsMessage, DefaultDamageTakenMessage
	return &ToolStats{
		Messages: MessagesConfig{
			Kills:       KillMessages{Player: &player, Mob: &mob},
			DamageTaken: &damage,
		},
		NumberFormat: NumberFormatConfig{Locale: DefaultLocale},
		classifier:   item.NewClassifier(),
	}
}

// LoadToolStats reads config.yml. A missing file yields the shipped defaults.
func LoadToolStats(ctx context.Context, path string, classifier *item.Classifier) (*ToolStats, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info(LogMsgToolStatsMissing, "path", path)
		cfg := DefaultToolStats()
		if classifier != nil {
			cfg.classifier = classifier
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadToolStatsFailed, path, err)
	}

	cfg, err := ParseToolStats(data, classifier)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseToolStatsFailed, path, err)
	}

	log.Info(LogMsgToolStatsLoaded, "path", path, "locale", cfg.Locale())
	return cfg, nil
}

// ParseToolStats decodes and validates config.yml contents
func ParseToolStats(data []byte, classifier *item.Classifier) (*ToolStats, error) {
	cfg := &ToolStats{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if classifier == nil {
		classifier = item.NewClassifier()
	}
	cfg.classifier = classifier

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field tags and rejects templates that would match every
// description line
func (c *ToolStats) Validate() error {
	if err := validateStruct(c); err != nil {
		return fmt.Errorf(ErrMsgInvalidToolStats, domain.ErrInvalidConfig, "config.yml", err)
	}
	for _, kind := range domain.StatKinds {
		tmpl := c.message(kind)
		if tmpl == nil {
			continue
		}
		if strings.TrimSpace(stripPlaceholder(translateColors(*tmpl), kind)) == "" {
			return fmt.Errorf(ErrMsgInvalidToolStats, domain.ErrInvalidConfig, "config.yml",
				fmt.Sprintf(ErrMsgTemplateWithoutText, messagePath(kind)))
		}
	}
	return nil
}

// LoreTemplate returns the render fragment (raw) or the match fragment for a
// statistic. Both have color codes translated; the match fragment has the
// placeholder removed.
func (c *ToolStats) LoreTemplate(kind domain.StatKind, raw bool) (string, bool) {
	tmpl := c.message(kind)
	if tmpl == nil {
		return "", false
	}
	translated := translateColors(*tmpl)
	if raw {
		return translated, true
	}
	match := stripPlaceholder(translated, kind)
	if strings.TrimSpace(match) == "" {
		return "", false
	}
	return match, true
}

// IsLoreEnabled reports whether descriptions are written for kind on items of
// this material
func (c *ToolStats) IsLoreEnabled(kind domain.StatKind, material domain.Material) bool {
	switch kind {
	case domain.StatArmorDamage:
		return c.IsArmorDamageEnabled()
	case domain.StatPlayerKills, domain.StatMobKills:
		return c.IsFamilyEnabled(kind, c.family(material))
	}
	return false
}

// IsFamilyEnabled reports whether kill descriptions of kind are written on
// weapons of the family
func (c *ToolStats) IsFamilyEnabled(kind domain.StatKind, family item.Family) bool {
	switch kind {
	case domain.StatPlayerKills:
		return familyEnabled(c.Enabled.PlayerKills, family)
	case domain.StatMobKills:
		return familyEnabled(c.Enabled.MobKills, family)
	}
	return false
}

// IsArmorDamageEnabled reports whether armor descriptions are written
func (c *ToolStats) IsArmorDamageEnabled() bool {
	return c.Enabled.ArmorDamage == nil || *c.Enabled.ArmorDamage
}

// Locale returns the configured number locale
func (c *ToolStats) Locale() language.Tag {
	if c.NumberFormat.Locale == "" {
		return utils.ParseLocale(DefaultLocale)
	}
	return utils.ParseLocale(c.NumberFormat.Locale)
}

func (c *ToolStats) family(material domain.Material) item.Family {
	if c.classifier == nil {
		c.classifier = item.NewClassifier()
	}
	return c.classifier.Family(material)
}

func (c *ToolStats) message(kind domain.StatKind) *string {
	switch kind {
	case domain.StatPlayerKills:
		return c.Messages.Kills.Player
	case domain.StatMobKills:
		return c.Messages.Kills.Mob
	case domain.StatArmorDamage:
		return c.Messages.DamageTaken
	}
	return nil
}

func familyEnabled(flags map[string]bool, family item.Family) bool {
	if flags == nil {
		return true
	}
	enabled, ok := flags[string(family)]
	return !ok || enabled
}

func messagePath(kind domain.StatKind) string {
	switch kind {
	case domain.StatPlayerKills:
		return MessagePlayerKills
	case domain.StatMobKills:
		return MessageMobKills
	}
	return MessageDamageTaken
}

func stripPlaceholder(s string, kind domain.StatKind) string {
	return strings.ReplaceAll(s, kind.Placeholder(), "")
}

// translateColors turns '&' color codes into section-sign codes
func translateColors(s string) string {
	runes := []rune(s)
	for i := 0; i < len(runes)-1; i++ {
		if runes[i] == AltColorChar && strings.ContainsRune(ColorCodeSet, runes[i+1]) {
			runes[i] = ColorChar
			runes[i+1] = []rune(strings.ToLower(string(runes[i+1])))[0]
		}
	}
	return string(runes)
}
