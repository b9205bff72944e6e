package angles

import (
	"fmt"
	"strings"
)

// Unit is the unit an angle's magnitude is expressed in.
type Unit uint8

const (
	Radians Unit = iota
	Degrees
	Gradians
)

const unitCount = 3

var unitNames = [unitCount]string{"Radians", "Degrees", "Gradians"}

func (u Unit) String() string {
	if u.Valid() {
		return unitNames[u]
	}

	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// Valid reports whether u is one of Radians, Degrees or Gradians.
func (u Unit) Valid() bool {
	return u < unitCount
}

// ParseUnit returns the unit with the given name. Names are matched case
// insensitive, the singular form is accepted too.
func ParseUnit(name string) (Unit, error) {
	name = strings.TrimSpace(name)

	for idx, unitName := range unitNames {
		if strings.EqualFold(name, unitName) || strings.EqualFold(name, strings.TrimSuffix(unitName, "s")) {
			return Unit(idx), nil
		}
	}

	return 0, fmt.Errorf("parse unit %q: %w", name, ErrUnknownUnit)
}

func mustBeValid(u Unit) {
	if !u.Valid() {
		panic(fmt.Sprintf("expected Radians, Degrees or Gradians, got %s", u))
	}
}

// NormalizationRange selects the interval an angle is folded into.
type NormalizationRange uint8

const (
	// ZeroToOneTurn folds into [0, one turn).
	ZeroToOneTurn NormalizationRange = iota

	// MinusHalfTurnToHalfTurn folds magnitudes above half a turn into
	// (-half turn, half turn]. See Angle.NormalizeMinusHalfToHalf.
	MinusHalfTurnToHalfTurn
)

func (r NormalizationRange) String() string {
	switch r {
	case ZeroToOneTurn:
		return "ZeroToOneTurn"
	case MinusHalfTurnToHalfTurn:
		return "MinusHalfTurnToHalfTurn"
	default:
		return fmt.Sprintf("NormalizationRange(%d)", uint8(r))
	}
}
