package chem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalance(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"H2 + O2 = H2O", "2H2 + O2 → 2H2O"},
		{"Fe + O2 = Fe2O3", "4Fe + 3O2 → 2Fe2O3"},
		{"C3H8 + O2 = CO2 + H2O", "C3H8 + 5O2 → 3CO2 + 4H2O"},
		{"Na + Cl = NaCl", "Na + Cl → NaCl"},
		{"CH4 + O2 -> CO2 + H2O", "CH4 + 2O2 → CO2 + 2H2O"},
		{"Al + HCl = AlCl3 + H2", "2Al + 6HCl → 2AlCl3 + 3H2"},
		{"KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2", "2KMnO4 + 16HCl → 2KCl + 2MnCl2 + 8H2O + 5Cl2"},
		{"CuSO4·5H2O = CuSO4 + H2O", "CuSO4·5H2O → CuSO4 + 5H2O"},
		{"Ca(OH)2 + H3PO4 = Ca3(PO4)2 + H2O", "3Ca(OH)2 + 2H3PO4 → Ca3(PO4)2 + 6H2O"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			bal, err := Balance(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, bal.String())
		})
	}
}

func TestBalance_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"element on one side only", "H2 = O2", ErrUnbalanceable},
		{"missing arrow", "H2 O2", ErrNoArrow},
		{"two independent balancings", "C + O2 = CO + CO2", ErrAmbiguous},
		{"unknown element", "Fe + Qq = FeQq", ErrUnknownElement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Balance(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// Every element count must cancel exactly: Matrix · coefficients == 0.
func TestBalance_Conservation(t *testing.T) {
	inputs := []string{
		"H2 + O2 = H2O",
		"Fe + O2 = Fe2O3",
		"C3H8 + O2 = CO2 + H2O",
		"KMnO4 + HCl = KCl + MnCl2 + H2O + Cl2",
		"Ca(OH)2 + H3PO4 = Ca3(PO4)2 + H2O",
	}

	for _, input := range inputs {
		bal, err := Balance(input)
		require.NoError(t, err, input)

		m := BuildMatrix(bal.Equation)
		for r, row := range m.Cells {
			sum := 0
			for c, cell := range row {
				sum += cell * bal.Coefficients[c]
			}
			assert.Zero(t, sum, "%s: element %s not conserved", input, m.Elements[r])
		}
	}
}

// Whitespace around tokens must not change the result.
func TestBalance_WhitespaceInvariance(t *testing.T) {
	a, err := Balance("Fe + O2 = Fe2O3")
	require.NoError(t, err)
	b, err := Balance("  Fe+O2=Fe2O3  ")
	require.NoError(t, err)
	assert.Equal(t, a.Coefficients, b.Coefficients)
}

func TestBalance_AllPositiveCoefficients(t *testing.T) {
	bal, err := Balance("H2 + O2 = H2O")
	require.NoError(t, err)
	for i, c := range bal.Coefficients {
		assert.Positive(t, c, "coefficient %d", i)
	}
}
