package model

// EligibilityVerdict is the per-criterion breakdown of one tenant/property
// evaluation. Eligible is the conjunction of the six sub-results. Verdicts are
// computed on demand and never persisted.
type EligibilityVerdict struct {
	Eligible   bool `json:"eligible"`
	Income     bool `json:"income"`
	Score      bool `json:"score"`
	Employment bool `json:"employment"`
	Pets       bool `json:"pets"`
	Smoking    bool `json:"smoking"`
	Parking    bool `json:"parking"`
}
