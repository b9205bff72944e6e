package angles

import (
	"math"

	"github.com/oliverbestmann/angles/gm"
)

// Number is the set of magnitude types an Angle can be instantiated with.
type Number interface {
	int32 | float32 | float64
}

// Kind identifies the numeric kind of an angle.
type Kind uint8

const (
	KindInt Kind = iota
	KindFloat
	KindDouble
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "AngleInt"
	case KindFloat:
		return "AngleFloat"
	case KindDouble:
		return "AngleDouble"
	default:
		return "AngleUnknown"
	}
}

type turns struct {
	one, half, quarter float64
}

// arithmetic evaluates the kernel operations in one floating point width.
// Operands and results are passed as float64, but every operation rounds
// through the width the precision is defined in.
type arithmetic interface {
	narrow(x float64) float64
	abs(x float64) float64
	mul(x, y float64) float64
	div(x, y float64) float64
	mod(x, y float64) float64
	floorMod(x, y float64) float64

	sin(x float64) float64
	cos(x float64) float64
	tan(x float64) float64
	sinh(x float64) float64
	cosh(x float64) float64
	tanh(x float64) float64
}

type width[F gm.Float] struct{}

func (width[F]) narrow(x float64) float64 { return float64(F(x)) }

func (width[F]) abs(x float64) float64 { return float64(gm.Abs(F(x))) }

func (width[F]) mul(x, y float64) float64 { return float64(F(x) * F(y)) }

func (width[F]) div(x, y float64) float64 { return float64(F(x) / F(y)) }

func (width[F]) mod(x, y float64) float64 { return float64(gm.Mod(F(x), F(y))) }

func (width[F]) floorMod(x, y float64) float64 { return float64(gm.FlooredMod(F(x), F(y))) }

func (width[F]) sin(x float64) float64 { return float64(gm.Sin(F(x))) }

func (width[F]) cos(x float64) float64 { return float64(gm.Cos(F(x))) }

func (width[F]) tan(x float64) float64 { return float64(gm.Tan(F(x))) }

func (width[F]) sinh(x float64) float64 { return float64(gm.Sinh(F(x))) }

func (width[F]) cosh(x float64) float64 { return float64(gm.Cosh(F(x))) }

func (width[F]) tanh(x float64) float64 { return float64(gm.Tanh(F(x))) }

// precision holds the unit conversion table and the tolerances of one kind.
type precision struct {
	arithmetic

	kind Kind

	// tolerance for magnitudes, used by the relational predicates
	// and for comparing revolutions
	epsilon float64

	// revolutions of two angles of this kind compare exactly
	exact bool

	// rounds stored magnitudes to whole numbers
	integral bool

	turns   [unitCount]turns
	factors [unitCount][unitCount]float64

	// the range the trigonometric functions normalize into
	trigRange NormalizationRange

	// the range CompareNormalized normalizes into
	compareRange NormalizationRange

	// the unit the named constants are expressed in
	constants Unit

	// largest magnitude the kind can hold
	limit float64
}

func conversionTable(rad2deg, deg2rad, grad2deg, deg2grad, grad2rad, rad2grad float64) [unitCount][unitCount]float64 {
	var factors [unitCount][unitCount]float64

	factors[Radians] = [unitCount]float64{Radians: 1, Degrees: rad2deg, Gradians: rad2grad}
	factors[Degrees] = [unitCount]float64{Radians: deg2rad, Degrees: 1, Gradians: deg2grad}
	factors[Gradians] = [unitCount]float64{Radians: grad2rad, Degrees: grad2deg, Gradians: 1}

	return factors
}

var doublePrecision = precision{
	arithmetic: width[float64]{},
	kind:       KindDouble,
	epsilon:    1.0e-8,

	turns: [unitCount]turns{
		Radians:  {one: 6.2831853071795865, half: 3.1415926535897932, quarter: 1.5707963267948966},
		Degrees:  {one: 360, half: 180, quarter: 90},
		Gradians: {one: 400, half: 200, quarter: 100},
	},

	factors: conversionTable(
		57.2957795130823209,
		0.0174532925199433,
		0.9,
		1.1111111111111111,
		0.0157079632679490,
		63.6619772367581343,
	),

	trigRange:    ZeroToOneTurn,
	compareRange: ZeroToOneTurn,
	constants:    Radians,
	limit:        math.MaxFloat64,
}

var floatPrecision = precision{
	arithmetic: width[float32]{},
	kind:       KindFloat,
	epsilon:    1.0e-4,

	turns: [unitCount]turns{
		Radians:  {one: float64(float32(6.2831853)), half: float64(float32(3.1415927)), quarter: float64(float32(1.5707963))},
		Degrees:  {one: 360, half: 180, quarter: 90},
		Gradians: {one: 400, half: 200, quarter: 100},
	},

	factors: conversionTable(
		float64(float32(57.2957795)),
		float64(float32(0.0174533)),
		float64(float32(0.9)),
		float64(float32(1.1111111)),
		float64(float32(0.0157080)),
		float64(float32(63.6619772)),
	),

	trigRange:    MinusHalfTurnToHalfTurn,
	compareRange: MinusHalfTurnToHalfTurn,
	constants:    Radians,
	limit:        math.MaxFloat32,
}

// intPrecision evaluates in float32 with coarse constants. The named
// constants are expressed in degrees, where they are whole numbers.
var intPrecision = precision{
	arithmetic: width[float32]{},
	kind:       KindInt,
	epsilon:    1.0e-4,
	exact:      true,
	integral:   true,

	turns: [unitCount]turns{
		Radians:  {one: float64(float32(6.2832)), half: float64(float32(3.1416)), quarter: float64(float32(1.5708))},
		Degrees:  {one: 360, half: 180, quarter: 90},
		Gradians: {one: 400, half: 200, quarter: 100},
	},

	factors: conversionTable(
		float64(float32(57.2958)),
		float64(float32(0.0175)),
		float64(float32(0.9)),
		float64(float32(1.1111)),
		float64(float32(0.0157)),
		float64(float32(63.6620)),
	),

	trigRange:    MinusHalfTurnToHalfTurn,
	compareRange: ZeroToOneTurn,
	constants:    Degrees,
	limit:        math.MaxInt32,
}

func precisionOf[T Number]() *precision {
	var zero T
	switch any(zero).(type) {
	case int32:
		return &intPrecision
	case float32:
		return &floatPrecision
	default:
		return &doublePrecision
	}
}

func (p *precision) oneTurn(unit Unit) float64 {
	mustBeValid(unit)
	return p.turns[unit].one
}

func (p *precision) halfTurn(unit Unit) float64 {
	mustBeValid(unit)
	return p.turns[unit].half
}

func (p *precision) quarterTurn(unit Unit) float64 {
	mustBeValid(unit)
	return p.turns[unit].quarter
}

// convert converts a magnitude between units, multiplying by the directed
// conversion factor of this precision.
func (p *precision) convert(from, to Unit, value float64) float64 {
	mustBeValid(from)
	mustBeValid(to)

	if from == to {
		return value
	}

	return p.mul(value, p.factors[from][to])
}

// store rounds a computed value into the representation of this kind.
func (p *precision) store(value float64) float64 {
	if p.integral {
		return float64(gm.RoundInt32(value))
	}

	return p.narrow(value)
}

func (p *precision) revolutions(value float64, unit Unit) float64 {
	return p.div(value, p.oneTurn(unit))
}

// zeroToOneTurn folds value into [0, one turn) using a floored modulo.
func (p *precision) zeroToOneTurn(value float64, unit Unit) float64 {
	return p.floorMod(value, p.oneTurn(unit))
}

// minusHalfToHalf folds values above half a turn using a truncated modulo.
// Values at or below half a turn, including large negative ones, are returned
// unchanged, and values above one and a half turns do not land on their
// coterminal angle.
func (p *precision) minusHalfToHalf(value float64, unit Unit) float64 {
	half := p.halfTurn(unit)
	if value > half {
		return p.narrow(p.mod(value, half) - half)
	}

	return value
}

// signedFold folds value into (-half turn, half turn] keeping its terminal
// side.
func (p *precision) signedFold(value float64, unit Unit) float64 {
	folded := p.zeroToOneTurn(value, unit)
	if folded > p.halfTurn(unit) {
		folded = p.narrow(folded - p.oneTurn(unit))
	}

	return folded
}

func (p *precision) normalize(value float64, unit Unit, r NormalizationRange) float64 {
	switch r {
	case ZeroToOneTurn:
		return p.zeroToOneTurn(value, unit)
	case MinusHalfTurnToHalfTurn:
		return p.minusHalfToHalf(value, unit)
	default:
		panic("unknown normalization range " + r.String())
	}
}
