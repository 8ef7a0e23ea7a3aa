package command

import "strings"

const guideText = `Ask science questions with slash commands.

Quick examples:
  /calc (2+3)^3            -> 125
  /solve x^2 = 9           -> x = 3, x = -3
  /convert 10 m/s km/h     -> 36 km/h
  /balance Fe + O2 = Fe2O3 -> 4Fe + 3O2 → 2Fe2O3
  /ohm i=2 r=10            -> V = 20 V

Equations use "=" or "->" between reactants and products, and "+"
between formulas. Groups like (OH)2 and hydrates like CuSO4·5H2O are
understood.`

// helpResponse renders the guide plus the command catalog.
func helpResponse(r *Registry) *Response {
	resp := &Response{Text: guideText}
	for _, c := range r.Commands() {
		resp.Fields = append(resp.Fields, Field{
			Name:  c.Usage,
			Value: c.Summary,
		})
	}
	return resp
}

// Format renders a response as plain text, used by front ends without
// their own styling.
func (resp *Response) Format() string {
	var b strings.Builder
	b.WriteString(resp.Text)
	for _, f := range resp.Fields {
		b.WriteString("\n  ")
		b.WriteString(f.Name)
		if f.Value != "" {
			b.WriteString(": ")
			b.WriteString(f.Value)
		}
	}
	return b.String()
}
