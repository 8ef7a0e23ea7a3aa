// Package units answers unit-conversion and quick physics questions:
// quantity conversion, physical constants, Ohm's law, and SUVAT
// kinematics. Conversion itself is delegated to go-units; this package
// only registers the handful of compound units the underlying library
// does not ship.
package units

import (
	"fmt"

	gounits "github.com/bcicen/go-units"
)

// Compound units used by the conversion examples the bot documents
// ("10 m/s to km/h"). go-units covers base quantities only, so speed
// and acceleration are registered here.
var (
	meterPerSecond        = gounits.NewUnit("meter per second", "m/s", gounits.UnitOptionQuantity("speed"))
	kilometerPerHour      = gounits.NewUnit("kilometer per hour", "km/h", gounits.UnitOptionQuantity("speed"))
	milePerHour           = gounits.NewUnit("mile per hour", "mph", gounits.UnitOptionQuantity("speed"))
	knot                  = gounits.NewUnit("knot", "kn", gounits.UnitOptionQuantity("speed"))
	meterPerSecondSquared = gounits.NewUnit("meter per second squared", "m/s^2", gounits.UnitOptionQuantity("acceleration"))
)

func init() {
	gounits.NewRatioConversion(meterPerSecond, kilometerPerHour, 3.6)
	gounits.NewRatioConversion(milePerHour, meterPerSecond, 0.44704)
	gounits.NewRatioConversion(knot, meterPerSecond, 0.514444)
}

// Convert converts value from one unit to another, resolving unit names
// by name, symbol, or plural ("m", "meter", "meters").
func Convert(value float64, from, to string) (float64, error) {
	fu, err := gounits.Find(from)
	if err != nil {
		return 0, fmt.Errorf("units: unknown unit %q", from)
	}
	tu, err := gounits.Find(to)
	if err != nil {
		return 0, fmt.Errorf("units: unknown unit %q", to)
	}
	v, err := gounits.ConvertFloat(value, fu, tu)
	if err != nil {
		return 0, fmt.Errorf("units: %w", err)
	}
	return v.Float(), nil
}
