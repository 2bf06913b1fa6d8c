package element

// DefaultAnimationDuration is the duration used by [DefaultAnimation].
const DefaultAnimationDuration = 100

// Animation controls a resize transition: a duration in engine units paired
// with an easing curve.
type Animation struct {
	// Duration of the transition.
	Duration uint32 `json:"duration"`

	// Easing curve. [NewAnimation] and [DefaultAnimation] always set it.
	Easing *Easing `json:"easing,omitempty"`
}

// DefaultAnimation returns an animation of [DefaultAnimationDuration] with
// [Linear] easing.
func DefaultAnimation() Animation {
	return NewAnimation(DefaultAnimationDuration, nil)
}

// NewAnimation creates an animation with the given duration. A nil easing
// falls back to [Linear] rather than leaving the field unset.
func NewAnimation(duration uint32, easing *Easing) Animation {
	e := Linear
	if easing != nil {
		e = *easing
	}
	return Animation{Duration: duration, Easing: &e}
}
