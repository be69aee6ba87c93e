package matcher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/locus/internal/geo"
)

// Default test-mode substitution.
const (
	DefaultTestMarker      = "菜鸟驿站"
	DefaultTestReplacement = "TEST"
)

// Record is the part of a location record the matcher needs: a coordinate
// accessor and an address mutator.
type Record interface {
	Coordinates() (lat, lon string)
	CurrentAddress() string
	SetAddress(addr string)
}

// Preprocessor optionally rewrites the address of a record.
// An error means the record coordinates are malformed and the address was left untouched.
type Preprocessor interface {
	Preprocess(ctx context.Context, rec Record) (Match, bool, error)
}

// Matcher rewrites record addresses to the nearest reference within a threshold.
type Matcher struct {
	refs        *ReferenceSet
	threshold   float64
	testMode    bool
	marker      string
	replacement string
	log         *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithThreshold sets the matching radius in meters.
func WithThreshold(meters float64) Option {
	return func(m *Matcher) { m.threshold = meters }
}

// WithTestMode replaces the whole address with replacement when it contains marker.
// Empty arguments fall back to the defaults.
func WithTestMode(marker, replacement string) Option {
	return func(m *Matcher) {
		m.testMode = true
		if marker != "" {
			m.marker = marker
		}
		if replacement != "" {
			m.replacement = replacement
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(m *Matcher) { m.log = log }
}

// New returns a Matcher over refs. refs is shared, never copied or mutated.
func New(refs *ReferenceSet, opts ...Option) *Matcher {
	m := &Matcher{
		refs:        refs,
		threshold:   DefaultThresholdMeters,
		marker:      DefaultTestMarker,
		replacement: DefaultTestReplacement,
		log:         slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Threshold returns the matching radius in meters.
func (m *Matcher) Threshold() float64 { return m.threshold }

// Lookup resolves a validated query point against the reference set.
func (m *Matcher) Lookup(query geo.Point) (Match, bool) {
	return Resolve(query, m.refs, m.threshold)
}

// Preprocess parses the record coordinates and, if a reference is in range,
// overwrites the record address with the reference label.
func (m *Matcher) Preprocess(ctx context.Context, rec Record) (Match, bool, error) {
	lat, lon := rec.Coordinates()
	query, err := geo.ParsePoint(lat, lon, rec.CurrentAddress())
	if err != nil {
		return Match{}, false, fmt.Errorf("invalid record coordinates: %w", err)
	}

	match, found := m.Lookup(query)
	if found {
		m.log.DebugContext(ctx, "Record matched reference",
			"reference", match.Name, "distance_m", match.DistanceMeters)
		rec.SetAddress(match.Label)
	} else {
		m.log.DebugContext(ctx, "No reference in range, address kept", "lat", lat, "lon", lon)
	}

	if m.testMode && strings.Contains(rec.CurrentAddress(), m.marker) {
		rec.SetAddress(m.replacement)
	}

	return match, found, nil
}
