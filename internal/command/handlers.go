package command

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/boffinbot/boffin/internal/chem"
	"github.com/boffinbot/boffin/internal/config"
	"github.com/boffinbot/boffin/internal/history"
	"github.com/boffinbot/boffin/internal/mathx"
	"github.com/boffinbot/boffin/internal/units"
)

// New builds the bot's full command set. hist may be nil to disable
// history recording.
func New(cfg *config.Config, hist *history.Store) *Registry {
	h := &handlers{cfg: cfg, hist: hist}

	r := NewRegistry()
	r.Register(&Command{
		Name: "balance", Group: "chem",
		Usage:   "/balance <equation>",
		Summary: "balance a chemical equation, e.g. Fe + O2 = Fe2O3",
		MinArgs: 1,
		Run:     h.balance,
	})
	r.Register(&Command{
		Name: "calc", Group: "math",
		Usage:   "/calc <expression>",
		Summary: "evaluate an expression, e.g. (2+3)^3",
		MinArgs: 1,
		Run:     h.calc,
	})
	r.Register(&Command{
		Name: "solve", Group: "math",
		Usage:   "/solve <equation>",
		Summary: "solve a linear or quadratic equation in x, e.g. x^2 = 9",
		MinArgs: 1,
		Run:     h.solve,
	})
	r.Register(&Command{
		Name: "plot", Group: "math",
		Usage:   "/plot <expression of x>",
		Summary: "plot an expression, e.g. sin(x)",
		MinArgs: 1,
		Run:     h.plot,
	})
	r.Register(&Command{
		Name: "convert", Group: "phys",
		Usage:   "/convert <value> <from> <to>",
		Summary: "convert between units, e.g. 10 m/s km/h",
		MinArgs: 3,
		Run:     h.convert,
	})
	r.Register(&Command{
		Name: "const", Group: "phys",
		Usage:   "/const <symbol>",
		Summary: "show a physical constant, e.g. c, h, k_B, N_A",
		MinArgs: 1,
		Run:     h.constant,
	})
	r.Register(&Command{
		Name: "ohm", Group: "phys",
		Usage:   "/ohm <two of v= i= r=>",
		Summary: "Ohm's law V = I*R, e.g. i=2 r=10",
		MinArgs: 2,
		Run:     h.ohm,
	})
	r.Register(&Command{
		Name: "suvat", Group: "phys",
		Usage:   "/suvat <three of s= u= v= a= t=>",
		Summary: "kinematics fill-in, e.g. u=2 a=1 t=4",
		MinArgs: 3,
		Run:     h.suvat,
	})
	r.Register(&Command{
		Name: "history", Group: "util",
		Usage:   "/history",
		Summary: "show recent computations",
		Run:     h.history,
	})
	r.Register(&Command{
		Name: "help", Group: "util",
		Usage:   "/help",
		Summary: "show this guide",
		Run: func(ctx context.Context, req Request) (*Response, error) {
			return helpResponse(r), nil
		},
	})
	return r
}

type handlers struct {
	cfg  *config.Config
	hist *history.Store
}

// record appends to history; failures are logged, never surfaced, so a
// full disk cannot break a computation that already succeeded.
func (h *handlers) record(command, input, output string) {
	if h.hist == nil {
		return
	}
	if err := h.hist.Append(history.Entry{Command: command, Input: input, Output: output}); err != nil {
		log.Printf("history: %v", err)
	}
}

func (h *handlers) balance(ctx context.Context, req Request) (*Response, error) {
	bal, err := chem.Balance(req.Raw)
	if err != nil {
		return nil, err
	}
	out := bal.String()
	h.record("balance", req.Raw, out)
	return &Response{Text: out}, nil
}

func (h *handlers) calc(ctx context.Context, req Request) (*Response, error) {
	out, err := mathx.Eval(req.Raw)
	if err != nil {
		return nil, err
	}
	h.record("calc", req.Raw, out)
	return &Response{Text: out}, nil
}

func (h *handlers) solve(ctx context.Context, req Request) (*Response, error) {
	roots, err := mathx.SolveEquation(req.Raw, "x")
	if err != nil {
		return nil, err
	}
	out := strings.Join(roots, ", ")
	h.record("solve", req.Raw, out)
	return &Response{Text: out}, nil
}

func (h *handlers) plot(ctx context.Context, req Request) (*Response, error) {
	p := h.cfg.Plot
	ys, err := mathx.Sample(req.Raw, p.From, p.To, p.Samples)
	if err != nil {
		return nil, err
	}
	graph := asciigraph.Plot(ys,
		asciigraph.Height(p.Height),
		asciigraph.Caption(fmt.Sprintf("%s for x in [%g, %g]", req.Raw, p.From, p.To)),
	)
	return &Response{Text: graph, Code: true}, nil
}

func (h *handlers) convert(ctx context.Context, req Request) (*Response, error) {
	value, err := strconv.ParseFloat(req.Args[0], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrUsage, req.Args[0])
	}
	from, to := req.Args[1], req.Args[2]
	got, err := units.Convert(value, from, to)
	if err != nil {
		return nil, err
	}
	out := fmt.Sprintf("%s %s = %s %s", mathx.FormatFloat(value), from, mathx.FormatFloat(got), to)
	h.record("convert", req.Raw, out)
	return &Response{Text: out}, nil
}

func (h *handlers) constant(ctx context.Context, req Request) (*Response, error) {
	c, ok := units.LookupConstant(req.Args[0])
	if !ok {
		return nil, fmt.Errorf("%w: unknown constant %q", ErrUsage, req.Args[0])
	}
	return &Response{
		Text: c.Name,
		Fields: []Field{
			{"Value", strconv.FormatFloat(c.Value, 'g', -1, 64)},
			{"Unit", c.Unit},
		},
	}, nil
}

func (h *handlers) ohm(ctx context.Context, req Request) (*Response, error) {
	vals, err := keyedFloats(req.Args, "v", "i", "r")
	if err != nil {
		return nil, err
	}
	res, err := units.Ohm(vals["v"], vals["i"], vals["r"])
	if err != nil {
		return nil, err
	}
	h.record("ohm", req.Raw, fmt.Sprintf("V=%g I=%g R=%g", res.V, res.I, res.R))
	return &Response{
		Text: "Ohm's law",
		Fields: []Field{
			{"V", mathx.FormatFloat(res.V) + " V"},
			{"I", mathx.FormatFloat(res.I) + " A"},
			{"R", mathx.FormatFloat(res.R) + " Ω"},
		},
	}, nil
}

func (h *handlers) suvat(ctx context.Context, req Request) (*Response, error) {
	vals, err := keyedFloats(req.Args, "s", "u", "v", "a", "t")
	if err != nil {
		return nil, err
	}
	k := &units.Kinematics{S: vals["s"], U: vals["u"], V: vals["v"], A: vals["a"], T: vals["t"]}
	if err := k.Solve(); err != nil {
		return nil, err
	}

	resp := &Response{Text: "Kinematics (SUVAT)"}
	for _, q := range []struct {
		label string
		val   *float64
		unit  string
	}{
		{"s", k.S, "m"}, {"u", k.U, "m/s"}, {"v", k.V, "m/s"}, {"a", k.A, "m/s^2"}, {"t", k.T, "s"},
	} {
		value := "—"
		if q.val != nil {
			value = mathx.FormatFloat(*q.val) + " " + q.unit
		}
		resp.Fields = append(resp.Fields, Field{q.label, value})
	}
	return resp, nil
}

func (h *handlers) history(ctx context.Context, req Request) (*Response, error) {
	if h.hist == nil {
		return &Response{Text: "history is disabled"}, nil
	}
	entries, err := h.hist.List(h.cfg.HistoryLimit)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return &Response{Text: "no history yet"}, nil
	}
	resp := &Response{Text: fmt.Sprintf("last %d computations", len(entries))}
	for _, e := range entries {
		resp.Fields = append(resp.Fields, Field{
			Name:  e.Timestamp.Format("2006-01-02 15:04:05") + " " + e.Command,
			Value: e.Input + " = " + e.Output,
		})
	}
	return resp, nil
}

// keyedFloats parses "v=5 r=10" style arguments; unknown keys are
// rejected, absent keys map to nil.
func keyedFloats(args []string, keys ...string) (map[string]*float64, error) {
	allowed := make(map[string]bool, len(keys))
	for _, k := range keys {
		allowed[k] = true
	}
	out := make(map[string]*float64, len(keys))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || !allowed[k] {
			return nil, fmt.Errorf("%w: expected one of %s, got %q", ErrUsage, strings.Join(keys, "=, ")+"=", arg)
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrUsage, v)
		}
		if out[k] != nil {
			return nil, fmt.Errorf("%w: duplicate %q", ErrUsage, k)
		}
		out[k] = &f
	}
	return out, nil
}
