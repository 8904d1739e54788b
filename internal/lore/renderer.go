// Package lore keeps the human readable statistic lines in an item's
// description in sync with its counters.
package lore

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/logger"
	"github.com/ArmaRealms/ToolStats/internal/metrics"
)

// TemplateSource provides description templates and the per-statistic
// switches that decide whether descriptions are written at all.
type TemplateSource interface {
	// LoreTemplate returns the render fragment (raw, placeholder intact) or the
	// match fragment (placeholder removed) for a statistic.
	LoreTemplate(kind domain.StatKind, raw bool) (string, bool)
	IsLoreEnabled(kind domain.StatKind, material domain.Material) bool
}

// NumberFormatter formats counter values for display
type NumberFormatter interface {
	FormatInt(n int) string
	FormatDouble(d float64) string
}

// Renderer regenerates statistic lines
type Renderer struct {
	templates TemplateSource
	numbers   NumberFormatter
}

// NewRenderer creates a new Renderer
func NewRenderer(templates TemplateSource, numbers NumberFormatter) *Renderer {
	return &Renderer{templates: templates, numbers: numbers}
}

// Render returns a copy of item whose description carries the line for kind
// built from value. Integral statistics render value as an integer.
//
// When the statistic's description is disabled the item is returned unchanged
// and no error is reported. A missing template yields ErrMissingTemplate with
// the item unchanged; callers keep the counter they already persisted.
func (r *Renderer) Render(ctx context.Context, item domain.Item, kind domain.StatKind, value float64) (domain.Item, error) {
	log := logger.FromContext(ctx)

	if item.Meta == nil {
		metrics.Anomalies.WithLabelValues(metrics.AnomalyMissingMetadata).Inc()
		return item, fmt.Errorf("%w: %s", domain.ErrMissingMetadata, item)
	}

	match, okMatch := r.templates.LoreTemplate(kind, false)
	raw, okRaw := r.templates.LoreTemplate(kind, true)
	if !okMatch || !okRaw {
		metrics.Anomalies.WithLabelValues(metrics.AnomalyMissingTemplate).Inc()
		log.Warn(LogMsgMissingTemplate, "stat", kind)
		return item, fmt.Errorf(ErrMsgMissingTemplate, domain.ErrMissingTemplate, kind)
	}

	if !r.templates.IsLoreEnabled(kind, item.Material) {
		log.Debug(LogMsgLoreDisabled, "stat", kind, "material", item.Material)
		return item, nil
	}

	line := strings.ReplaceAll(raw, kind.Placeholder(), r.format(kind, value))

	out := item.Clone()
	out.Meta.Lore = ReplaceLine(out.Meta.Lore, match, line)
	return out, nil
}

func (r *Renderer) format(kind domain.StatKind, value float64) string {
	if kind.Integral() {
		return r.numbers.FormatInt(int(value))
	}
	return r.numbers.FormatDouble(value)
}

// ReplaceLine returns a new description where the first line containing match
// is replaced by line. Without such a line, line is appended; a nil
// description becomes a one-line description. The input is never modified.
func ReplaceLine(description []string, match, line string) []string {
	if description == nil {
		return []string{line}
	}
	out := slices.Clone(description)
	for i, existing := range out {
		if strings.Contains(existing, match) {
			out[i] = line
			return out
		}
	}
	return append(out, line)
}
