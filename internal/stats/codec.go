package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/ArmaRealms/ToolStats/internal/domain"
	"github.com/ArmaRealms/ToolStats/internal/logger"
	"github.com/ArmaRealms/ToolStats/internal/metrics"
)

// Codec reads and writes statistic counters in an item's metadata store.
// Reads never fail on bad data: an absent or corrupt counter reads as zero.
// Writes never mutate the input item.
type Codec struct{}

// NewCodec creates a new Codec
func NewCodec() *Codec {
	return &Codec{}
}

// Int returns an integer counter. It fails only when the item cannot carry
// metadata or the statistic is not an integer one.
func (c *Codec) Int(ctx context.Context, item domain.Item, kind domain.StatKind) (int, error) {
	if !kind.Valid() || !kind.Integral() {
		return 0, fmt.Errorf(ErrMsgNotIntegral, domain.ErrUnknownStat, kind)
	}
	raw, ok, err := c.lookup(ctx, item, kind)
	if err != nil || !ok {
		return 0, err
	}

	switch v := raw.(type) {
	case int:
		return v, nil
	case int32:
		return int(v), nil
	case int64:
		return int(v), nil
	}

	c.reportCorrupt(ctx, item, kind, raw)
	return 0, nil
}

// Float returns a decimal accumulator. Integers stored under the key are
// widened; anything else reads as zero.
func (c *Codec) Float(ctx context.Context, item domain.Item, kind domain.StatKind) (float64, error) {
	if !kind.Valid() || kind.Integral() {
		return 0, fmt.Errorf(ErrMsgNotDecimal, domain.ErrUnknownStat, kind)
	}
	raw, ok, err := c.lookup(ctx, item, kind)
	if err != nil || !ok {
		return 0, err
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}

	c.reportCorrupt(ctx, item, kind, raw)
	return 0, nil
}

// SetInt returns a copy of item with the counter set to n
func (c *Codec) SetInt(item domain.Item, kind domain.StatKind, n int) (domain.Item, error) {
	if !kind.Valid() || !kind.Integral() {
		return item, fmt.Errorf(ErrMsgNotIntegral, domain.ErrUnknownStat, kind)
	}
	return c.set(item, kind, n)
}

// SetFloat returns a copy of item with the accumulator set to v
func (c *Codec) SetFloat(item domain.Item, kind domain.StatKind, v float64) (domain.Item, error) {
	if !kind.Valid() || kind.Integral() {
		return item, fmt.Errorf(ErrMsgNotDecimal, domain.ErrUnknownStat, kind)
	}
	return c.set(item, kind, v)
}

// Increment adds exactly one to an integer counter and returns the updated
// copy with the new value.
func (c *Codec) Increment(ctx context.Context, item domain.Item, kind domain.StatKind) (domain.Item, int, error) {
	n, err := c.Int(ctx, item, kind)
	if err != nil {
		return item, 0, err
	}
	n++
	updated, err := c.SetInt(item, kind, n)
	if err != nil {
		return item, 0, err
	}
	logger.FromContext(ctx).Debug(LogMsgCounterWritten, "item", item, "stat", kind, "value", n)
	return updated, n, nil
}

// Accumulate adds amount, unrounded, to a decimal accumulator and returns the
// updated copy with the new total.
func (c *Codec) Accumulate(ctx context.Context, item domain.Item, kind domain.StatKind, amount float64) (domain.Item, float64, error) {
	total, err := c.Float(ctx, item, kind)
	if err != nil {
		return item, 0, err
	}
	total += amount
	updated, err := c.SetFloat(item, kind, total)
	if err != nil {
		return item, 0, err
	}
	logger.FromContext(ctx).Debug(LogMsgCounterWritten, "item", item, "stat", kind, "value", total)
	return updated, total, nil
}

func (c *Codec) lookup(ctx context.Context, item domain.Item, kind domain.StatKind) (any, bool, error) {
	if item.Meta == nil {
		c.reportMissingMeta(ctx, item)
		return nil, false, fmt.Errorf(ErrMsgNoMetadata, domain.ErrMissingMetadata, item)
	}
	raw, ok := item.Meta.Data[kind.Key()]
	if !ok {
		return nil, false, nil
	}
	if raw == nil {
		c.reportCorrupt(ctx, item, kind, raw)
		return nil, false, nil
	}
	return raw, true, nil
}

func (c *Codec) set(item domain.Item, kind domain.StatKind, value any) (domain.Item, error) {
	if item.Meta == nil {
		return item, fmt.Errorf(ErrMsgNoMetadata, domain.ErrMissingMetadata, item)
	}
	out := item.Clone()
	if out.Meta.Data == nil {
		out.Meta.Data = make(map[domain.Key]any, 1)
	}
	out.Meta.Data[kind.Key()] = value
	return out, nil
}

func (c *Codec) reportMissingMeta(ctx context.Context, item domain.Item) {
	metrics.Anomalies.WithLabelValues(metrics.AnomalyMissingMetadata).Inc()
	logger.FromContext(ctx).Warn(LogMsgMissingMetadata, "item", item, "material", item.Material)
}

func (c *Codec) reportCorrupt(ctx context.Context, item domain.Item, kind domain.StatKind, raw any) {
	metrics.Anomalies.WithLabelValues(metrics.AnomalyCorruptCounter).Inc()
	logger.FromContext(ctx).Warn(LogMsgCorruptCounter,
		"item", item, "stat", kind,
		"error", fmt.Errorf(ErrMsgCorrupt, domain.ErrCorruptCounter, kind, raw))
}

// IsMissingMetadata reports whether err means the item cannot carry counters
func IsMissingMetadata(err error) bool {
	return errors.Is(err, domain.ErrMissingMetadata)
}
