package angles

import (
	"fmt"
	"io"

	"golang.org/x/text/message"
)

// String formats the angle as "<magnitude> <unit> (<kind>)", for example
// "3.14 Radians (AngleDouble)".
func (a Angle[T]) String() string {
	return fmt.Sprintf("%v %s (%s)", a.value, a.unit, a.Kind())
}

// Format implements fmt.Formatter. The verbs %v, %s and %q format the whole
// string as returned by String, %#v prints a Go expression constructing the
// angle. Any other verb is applied to the magnitude only, and the unit and
// kind are appended:
//
//	fmt.Sprintf("%.2f", angles.Rad(math.Pi)) // "3.14 Radians (AngleDouble)"
func (a Angle[T]) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('#'):
		_, _ = fmt.Fprintf(f, "angles.New[%T](%#v, angles.%s)", a.value, a.value, a.unit)

	case verb == 'v' || verb == 's':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, 's'), a.String())

	case verb == 'q':
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, 'q'), a.String())

	default:
		_, _ = fmt.Fprintf(f, fmt.FormatString(f, verb), a.value)
		_, _ = io.WriteString(f, a.suffix())
	}
}

// Localized formats the magnitude using the printer's locale and the given
// format, and appends the unit and kind:
//
//	p := message.NewPrinter(language.German)
//	angles.Deg(1234.5).Localized(p, "%.1f") // "1.234,5 Degrees (AngleDouble)"
func (a Angle[T]) Localized(p *message.Printer, format string) string {
	return p.Sprintf(format, a.value) + a.suffix()
}

func (a Angle[T]) suffix() string {
	return " " + a.unit.String() + " (" + a.Kind().String() + ")"
}
