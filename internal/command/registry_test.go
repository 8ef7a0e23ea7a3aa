package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/boffinbot/boffin/internal/chem"
	"github.com/boffinbot/boffin/internal/config"
	"github.com/boffinbot/boffin/internal/history"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	cfg := config.DefaultConfig()
	return New(cfg, history.New(t.TempDir()))
}

func TestDispatch_Balance(t *testing.T) {
	r := testRegistry(t)

	resp, err := r.Dispatch(context.Background(), "balance", "Fe + O2 = Fe2O3")
	if err != nil {
		t.Fatal(err)
	}
	if want := "4Fe + 3O2 → 2Fe2O3"; resp.Text != want {
		t.Errorf("balance = %q, want %q", resp.Text, want)
	}
}

func TestDispatch_BalanceError(t *testing.T) {
	r := testRegistry(t)

	_, err := r.Dispatch(context.Background(), "balance", "H2 O2")
	if !errors.Is(err, chem.ErrNoArrow) {
		t.Errorf("got %v, want ErrNoArrow", err)
	}
}

func TestDispatch_Calc(t *testing.T) {
	r := testRegistry(t)

	resp, err := r.Dispatch(context.Background(), "calc", "(2+3)^3")
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != "125" {
		t.Errorf("calc = %q, want 125", resp.Text)
	}
}

func TestDispatch_Convert(t *testing.T) {
	r := testRegistry(t)

	resp, err := r.Dispatch(context.Background(), "convert", "10 m/s km/h")
	if err != nil {
		t.Fatal(err)
	}
	if want := "10 m/s = 36 km/h"; resp.Text != want {
		t.Errorf("convert = %q, want %q", resp.Text, want)
	}
}

func TestDispatch_Ohm(t *testing.T) {
	r := testRegistry(t)

	resp, err := r.Dispatch(context.Background(), "ohm", "i=2 r=10")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Fields) != 3 || resp.Fields[0].Value != "20 V" {
		t.Errorf("ohm fields = %v", resp.Fields)
	}
}

func TestDispatch_UnknownCommand(t *testing.T) {
	r := testRegistry(t)

	_, err := r.Dispatch(context.Background(), "frobnicate", "")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("got %v, want ErrUnknownCommand", err)
	}
}

func TestDispatch_MinArgs(t *testing.T) {
	r := testRegistry(t)

	_, err := r.Dispatch(context.Background(), "convert", "10 m")
	if !errors.Is(err, ErrUsage) {
		t.Errorf("got %v, want ErrUsage", err)
	}
}

func TestDispatch_RecordsHistory(t *testing.T) {
	hist := history.New(t.TempDir())
	r := New(config.DefaultConfig(), hist)

	if _, err := r.Dispatch(context.Background(), "calc", "1+1"); err != nil {
		t.Fatal(err)
	}
	entries, err := hist.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Command != "calc" || entries[0].Output != "2" {
		t.Errorf("history = %+v", entries)
	}
}

func TestHelp_ListsAllCommands(t *testing.T) {
	r := testRegistry(t)

	resp, err := r.Dispatch(context.Background(), "help", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Fields) != len(r.Commands()) {
		t.Errorf("help lists %d commands, registry has %d", len(resp.Fields), len(r.Commands()))
	}
	if !strings.Contains(resp.Text, "/balance") {
		t.Error("guide should mention /balance")
	}
}

func TestResponse_Format(t *testing.T) {
	resp := &Response{Text: "Ohm's law", Fields: []Field{{"V", "20 V"}}}
	got := resp.Format()
	if !strings.Contains(got, "Ohm's law") || !strings.Contains(got, "V: 20 V") {
		t.Errorf("Format = %q", got)
	}
}
