package structure

// RejectReason explains why a stroke candidate was discarded.
type RejectReason string

const (
	RejectNoBreak     RejectReason = "NO_BREAK"
	RejectContainment RejectReason = "CONTAINMENT"
	RejectTooShort    RejectReason = "TOO_SHORT"
)

// StrokeRejection records one discarded stroke candidate: the anchor and
// candidate positions in the turning-point sequence and the filter that
// rejected it.
type StrokeRejection struct {
	AnchorPoint    int
	CandidatePoint int
	Reason         RejectReason
}

// Trace collects structured diagnostics from a pipeline run. All methods are
// safe on a nil receiver, which disables collection.
type Trace struct {
	StrokeRejections []StrokeRejection
}

func (t *Trace) rejectStroke(anchor, candidate int, reason RejectReason) {
	if t == nil {
		return
	}
	t.StrokeRejections = append(t.StrokeRejections, StrokeRejection{
		AnchorPoint:    anchor,
		CandidatePoint: candidate,
		Reason:         reason,
	})
}
