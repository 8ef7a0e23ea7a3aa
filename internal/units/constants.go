package units

// Constant is a physical constant with its CODATA value.
type Constant struct {
	Symbol string
	Name   string
	Value  float64
	Unit   string
}

// Constants holds the lookup table for the const command, in display
// order.
var Constants = []Constant{
	{"c", "Speed of light", 299_792_458, "m/s"},
	{"h", "Planck constant", 6.62607015e-34, "J*s"},
	{"k_B", "Boltzmann constant", 1.380649e-23, "J/K"},
	{"N_A", "Avogadro constant", 6.02214076e23, "1/mol"},
	{"e", "Elementary charge", 1.602176634e-19, "C"},
	{"G", "Gravitational constant", 6.67430e-11, "m^3/(kg*s^2)"},
	{"g0", "Standard gravity", 9.80665, "m/s^2"},
	{"R", "Ideal gas constant", 8.314462618, "J/(mol*K)"},
}

// LookupConstant finds a constant by its symbol.
func LookupConstant(symbol string) (Constant, bool) {
	for _, c := range Constants {
		if c.Symbol == symbol {
			return c, true
		}
	}
	return Constant{}, false
}
