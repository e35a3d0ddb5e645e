package model

// Default absolute tolerances, in model length units
const (
	DefaultZeroLength  = 1e-10
	DefaultCoincidence = 1e-6
)

// Tolerances holds the absolute geometric thresholds used when building elements
// and comparing node positions. Both are in the model's length unit, so models
// in millimeters may want larger values than models in meters.
type Tolerances struct {
	ZeroLength  float64 `json:"zero_length,omitempty"` // minimum element length
	Coincidence float64 `json:"coincidence,omitempty"` // maximum distance between coincident nodes
}

// DefaultTolerances returns the thresholds used when none are configured
func DefaultTolerances() Tolerances {
	return Tolerances{
		ZeroLength:  DefaultZeroLength,
		Coincidence: DefaultCoincidence,
	}
}

// withDefaults fills unset (non-positive) fields
func (t Tolerances) withDefaults() Tolerances {
	if t.ZeroLength <= 0 {
		t.ZeroLength = DefaultZeroLength
	}
	if t.Coincidence <= 0 {
		t.Coincidence = DefaultCoincidence
	}
	return t
}
