package affinetool

import (
	"math"
	"strings"
)

// Intent is a user action on the displayed polygon.
type Intent int

const (
	Reset Intent = iota
	RotateIntent
	ScaleUp
	ScaleDown
	ReflectIntent
	TranslateIntent
)

// Fixed parameters bound to the intents.
const (
	RotateAngle  = math.Pi / 4
	ScaleUpBy    = 1.5
	ScaleDownBy  = 0.5
	TranslateByX = 2.0
	TranslateByY = 1.0
)

var intentNames = map[Intent]string{
	Reset:           "reset",
	RotateIntent:    "rotate",
	ScaleUp:         "scale-up",
	ScaleDown:       "scale-down",
	ReflectIntent:   "reflect",
	TranslateIntent: "translate",
}

// Intents lists all intents in the order they are offered to the user.
func Intents() []Intent {
	return []Intent{RotateIntent, ScaleUp, ScaleDown, ReflectIntent, TranslateIntent, Reset}
}

func (i Intent) String() string {
	s, ok := intentNames[i]
	if !ok {
		return "unknown"
	}
	return s
}

// ParseIntent looks up an intent by name.
//
// Names are case insensitive; "original" is an alias for reset.
func ParseIntent(s string) (Intent, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "original" {
		return Reset, nil
	}
	for i, n := range intentNames {
		if n == name {
			return i, nil
		}
	}
	return Reset, NewValidationError("unknown intent %q", s)
}

// Matrix returns the transform bound to the intent.
// Reset maps to the identity.
func (i Intent) Matrix() Matrix {
	switch i {
	case RotateIntent:
		return Rotation(RotateAngle)
	case ScaleUp:
		return Scaling(ScaleUpBy, ScaleUpBy)
	case ScaleDown:
		return Scaling(ScaleDownBy, ScaleDownBy)
	case ReflectIntent:
		return Reflection()
	case TranslateIntent:
		return Translation(TranslateByX, TranslateByY)
	default:
		return Identity()
	}
}

// Apply runs the engine call for the intent on hm.
//
// Reset does not go through the engine, it returns hm as 2D vertices.
func (i Intent) Apply(hm Homogeneous) Polygon {
	switch i {
	case RotateIntent:
		return Rotate(RotateAngle, hm)
	case ScaleUp:
		return Scale(ScaleUpBy, ScaleUpBy, hm)
	case ScaleDown:
		return Scale(ScaleDownBy, ScaleDownBy, hm)
	case ReflectIntent:
		return Reflect(hm)
	case TranslateIntent:
		return Translate(TranslateByX, TranslateByY, hm)
	default:
		return hm.Project()
	}
}
