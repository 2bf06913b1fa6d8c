package element

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Easing is one of the easing curves supported by the rendering engine.
// The zero value is [Linear].
type Easing int

// Supported easing curves, in engine order.
const (
	Linear Easing = iota
	QuadraticIn
	QuadraticOut
	QuadraticInOut
	CubicIn
	CubicOut
	CubicInOut
	QuarticIn
	QuarticOut
	QuarticInOut
	QuinticIn
	QuinticOut
	QuinticInOut
	SinusoidalIn
	SinusoidalOut
	SinusoidalInOut
	ExponentialIn
	ExponentialOut
	ExponentialInOut
	CircularIn
	CircularOut
	CircularInOut
	ElasticIn
	ElasticOut
	ElasticInOut
	BackIn
	BackOut
	BackInOut
	BounceIn
	BounceOut
	BounceInOut
)

var easingNames = [...]string{
	Linear:           "linear",
	QuadraticIn:      "quadraticIn",
	QuadraticOut:     "quadraticOut",
	QuadraticInOut:   "quadraticInOut",
	CubicIn:          "cubicIn",
	CubicOut:         "cubicOut",
	CubicInOut:       "cubicInOut",
	QuarticIn:        "quarticIn",
	QuarticOut:       "quarticOut",
	QuarticInOut:     "quarticInOut",
	QuinticIn:        "quinticIn",
	QuinticOut:       "quinticOut",
	QuinticInOut:     "quinticInOut",
	SinusoidalIn:     "sinusoidalIn",
	SinusoidalOut:    "sinusoidalOut",
	SinusoidalInOut:  "sinusoidalInOut",
	ExponentialIn:    "exponentialIn",
	ExponentialOut:   "exponentialOut",
	ExponentialInOut: "exponentialInOut",
	CircularIn:       "circularIn",
	CircularOut:      "circularOut",
	CircularInOut:    "circularInOut",
	ElasticIn:        "elasticIn",
	ElasticOut:       "elasticOut",
	ElasticInOut:     "elasticInOut",
	BackIn:           "backIn",
	BackOut:          "backOut",
	BackInOut:        "backInOut",
	BounceIn:         "bounceIn",
	BounceOut:        "bounceOut",
	BounceInOut:      "bounceInOut",
}

var easingByName = func() map[string]Easing {
	m := make(map[string]Easing, len(easingNames))
	for i, name := range easingNames {
		m[name] = Easing(i)
	}
	return m
}()

// Easings returns every easing curve in declaration order.
func Easings() []Easing {
	out := make([]Easing, len(easingNames))
	for i := range easingNames {
		out[i] = Easing(i)
	}
	return out
}

// String returns the wire name of the easing ("quadraticInOut").
func (e Easing) String() string {
	if e < 0 || int(e) >= len(easingNames) {
		return fmt.Sprintf("Easing(%d)", int(e))
	}
	return easingNames[e]
}

// ParseEasing looks up an easing by its wire name. The match is exact.
func ParseEasing(name string) (Easing, error) {
	if e, ok := easingByName[name]; ok {
		return e, nil
	}
	return Linear, errors.New(errors.ErrCodeInvalidEasing, "unknown easing: %q", name)
}

// MarshalText renders the easing as its wire name. Values outside the
// enumeration are rejected.
func (e Easing) MarshalText() ([]byte, error) {
	if e < 0 || int(e) >= len(easingNames) {
		return nil, errors.New(errors.ErrCodeInvalidEasing, "invalid easing value %d", int(e))
	}
	return []byte(easingNames[e]), nil
}

// UnmarshalText parses a wire name with [ParseEasing].
func (e *Easing) UnmarshalText(text []byte) error {
	parsed, err := ParseEasing(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
