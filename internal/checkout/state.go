package checkout

// CaptureState tracks the capture-on-return effect of one page load.
type CaptureState int

const (
	CaptureIdle CaptureState = iota
	CaptureInFlight
	CaptureSucceeded
	CaptureFailed
)

func (s CaptureState) String() string {
	switch s {
	case CaptureIdle:
		return "idle"
	case CaptureInFlight:
		return "in_flight"
	case CaptureSucceeded:
		return "succeeded"
	case CaptureFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the capture has finished.
func (s CaptureState) Terminal() bool {
	return s == CaptureSucceeded || s == CaptureFailed
}
