package routing

// Constraints are the routing policy knobs. AvoidanceMargin is the only field
// the current algorithm consumes (obstacle inflation at grid build time); the
// spacing and bend fields are reserved and round-tripped unchanged.
type Constraints struct {
	MinWireSpacing       float64 `json:"minWireSpacing"`
	PreferredWireSpacing float64 `json:"preferredWireSpacing"`
	MaxBendCount         int     `json:"maxBendCount"`
	PreferredBendRadius  float64 `json:"preferredBendRadius"`
	AvoidanceMargin      float64 `json:"avoidanceMargin"`
}

// DefaultConstraints returns the engine's starting configuration.
func DefaultConstraints() Constraints {
	return Constraints{
		MinWireSpacing:       5,
		PreferredWireSpacing: 10,
		MaxBendCount:         4,
		PreferredBendRadius:  0,
		AvoidanceMargin:      5,
	}
}

// ConstraintsPatch is a partial constraints update; nil fields are unchanged.
type ConstraintsPatch struct {
	MinWireSpacing       *float64 `json:"minWireSpacing,omitempty"`
	PreferredWireSpacing *float64 `json:"preferredWireSpacing,omitempty"`
	MaxBendCount         *int     `json:"maxBendCount,omitempty"`
	PreferredBendRadius  *float64 `json:"preferredBendRadius,omitempty"`
	AvoidanceMargin      *float64 `json:"avoidanceMargin,omitempty"`
}

func (c Constraints) apply(p ConstraintsPatch) Constraints {
	if p.MinWireSpacing != nil {
		c.MinWireSpacing = *p.MinWireSpacing
	}
	if p.PreferredWireSpacing != nil {
		c.PreferredWireSpacing = *p.PreferredWireSpacing
	}
	if p.MaxBendCount != nil {
		c.MaxBendCount = *p.MaxBendCount
	}
	if p.PreferredBendRadius != nil {
		c.PreferredBendRadius = *p.PreferredBendRadius
	}
	if p.AvoidanceMargin != nil {
		c.AvoidanceMargin = *p.AvoidanceMargin
	}
	return c
}
