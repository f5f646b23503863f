// Package report renders analysis metrics and mixing feedback as text.
// This file contains the reusable table infrastructure for aligned
// metric rows with units and optional interpretation text.

package report

import (
	"fmt"
	"math"
	"strings"
)

// MetricRow is a single labeled measurement in a metric table.
// The value is a pre-formatted string so mixed formats (decimals, counts,
// placeholders) align cleanly.
type MetricRow struct {
	Label          string
	Value          string
	Unit           string // e.g. "dB", "BPM", "" for unitless
	Interpretation string // optional, only rendered when non-empty
}

// MetricTable formats aligned label/value/unit rows.
type MetricTable struct {
	Rows []MetricRow
}

// AddRow appends a pre-formatted row.
func (t *MetricTable) AddRow(label, value, unit, interpretation string) {
	t.Rows = append(t.Rows, MetricRow{Label: label, Value: value, Unit: unit, Interpretation: interpretation})
}

// AddMetricRow appends a numeric row, formatting the value automatically.
// NaN displays as the missing-value placeholder.
func (t *MetricTable) AddMetricRow(label string, value float64, decimals int, unit, interpretation string) {
	t.AddRow(label, formatMetric(value, decimals), unit, interpretation)
}

// String renders the table: labels left-aligned, values right-aligned,
// units and interpretations appended after.
func (t *MetricTable) String() string {
	if len(t.Rows) == 0 {
		return ""
	}

	labelWidth, valueWidth, unitWidth := 0, 0, 0
	for _, row := range t.Rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
		if len(row.Unit) > unitWidth {
			unitWidth = len(row.Unit)
		}
	}

	var sb strings.Builder
	for _, row := range t.Rows {
		fmt.Fprintf(&sb, "%-*s  %*s", labelWidth, row.Label, valueWidth, row.Value)
		if unitWidth > 0 {
			fmt.Fprintf(&sb, " %-*s", unitWidth, row.Unit)
		}
		if row.Interpretation != "" {
			sb.WriteString("  " + row.Interpretation)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// MissingValue is the placeholder for unavailable measurements
const MissingValue = "-"

// DigitalSilenceFloor is the dB level below which a signal is treated as
// digital silence for display. A true zero buffer measures -Inf; anything
// under -120 dB is indistinguishable from silence.
const DigitalSilenceFloor = -120.0

// formatMetric formats a value with fixed decimals, handling NaN/Inf.
func formatMetric(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return MissingValue
	}
	return fmt.Sprintf("%.*f", decimals, value)
}

// formatDB formats a dB value, showing "< -120" at or below the digital
// silence floor rather than -Inf.
func formatDB(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 1) {
		return MissingValue
	}
	if math.IsInf(value, -1) || value <= DigitalSilenceFloor {
		return "< -120"
	}
	return fmt.Sprintf("%.*f", decimals, value)
}
