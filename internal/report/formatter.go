package report

import (
	"fmt"
	"strings"

	"ChanStruct/internal/structure"
)

// FormatSummary formats one analysis into a multi-line text block for log or
// CLI output.
func FormatSummary(symbol, strategy string, a *structure.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("structure summary | %s | strategy=%s\n", symbol, strategy))
	b.WriteString(fmt.Sprintf("  merged bars:    %d\n", len(a.Merged)))
	b.WriteString(fmt.Sprintf("  turning points: %d\n", len(a.Points)))
	b.WriteString(fmt.Sprintf("  strokes:        %d\n", len(a.Strokes)))
	b.WriteString(fmt.Sprintf("  zones:          %d\n", len(a.Zones)))

	if len(a.Zones) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatZones(a))
	}
	if a.Trace != nil && len(a.Trace.StrokeRejections) > 0 {
		b.WriteString(fmt.Sprintf("\n  stroke candidates rejected: %d", len(a.Trace.StrokeRejections)))
		counts := map[structure.RejectReason]int{}
		for _, r := range a.Trace.StrokeRejections {
			counts[r.Reason]++
		}
		b.WriteString(fmt.Sprintf(" (no-break %d, containment %d, too-short %d)\n",
			counts[structure.RejectNoBreak], counts[structure.RejectContainment], counts[structure.RejectTooShort]))
	}
	return b.String()
}

// FormatZones lists every consolidation zone with its bounds and span.
func FormatZones(a *structure.Analysis) string {
	var b strings.Builder
	for i, z := range a.Zones {
		b.WriteString(fmt.Sprintf("  zone %d: ZG=%.4f ZD=%.4f height=%.2f%% strokes=%d (from stroke %d)\n",
			i+1, z.Upper, z.Lower, z.HeightPct, z.StrokeCount, z.FirstStroke))
	}
	return b.String()
}
