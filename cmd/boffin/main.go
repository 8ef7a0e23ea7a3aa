package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/boffinbot/boffin/internal/chat"
	"github.com/boffinbot/boffin/internal/command"
	"github.com/boffinbot/boffin/internal/config"
	"github.com/boffinbot/boffin/internal/discord"
	"github.com/boffinbot/boffin/internal/history"
)

var (
	dataDir    string
	configFile string
	// Plot flags
	plotFrom    float64
	plotTo      float64
	plotSamples int
	plotHeight  int
	// History flags
	historyLimit int
)

// main registers the boffin CLI: one subcommand per bot command, a
// terminal chat mode (the default when run with no arguments), and a
// Discord server mode.
func main() {
	rootCmd := &cobra.Command{
		Use:   "boffin",
		Short: "science helper: chemistry, math, and physics commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := setup()
			if err != nil {
				return err
			}
			return chat.Run(reg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "data directory (default .boffin)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	balanceCmd := &cobra.Command{
		Use:   "balance [equation]",
		Short: "balance a chemical equation",
		Args:  cobra.MinimumNArgs(1),
		RunE:  dispatchArgs("balance"),
	}

	calcCmd := &cobra.Command{
		Use:   "calc [expression]",
		Short: "evaluate an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE:  dispatchArgs("calc"),
	}

	solveCmd := &cobra.Command{
		Use:   "solve [equation]",
		Short: "solve a linear or quadratic equation in x",
		Args:  cobra.MinimumNArgs(1),
		RunE:  dispatchArgs("solve"),
	}

	plotCmd := &cobra.Command{
		Use:   "plot [expression of x]",
		Short: "plot an expression",
		Args:  cobra.MinimumNArgs(1),
		RunE:  dispatchArgs("plot"),
	}
	plotCmd.Flags().Float64Var(&plotFrom, "from", 0, "range start")
	plotCmd.Flags().Float64Var(&plotTo, "to", 0, "range end")
	plotCmd.Flags().IntVar(&plotSamples, "samples", 0, "sample count")
	plotCmd.Flags().IntVar(&plotHeight, "height", 0, "graph height")

	convertCmd := &cobra.Command{
		Use:   "convert [value] [from] [to]",
		Short: "convert between units",
		Args:  cobra.ExactArgs(3),
		RunE:  dispatchArgs("convert"),
	}

	constCmd := &cobra.Command{
		Use:   "const [symbol]",
		Short: "show a physical constant",
		Args:  cobra.ExactArgs(1),
		RunE:  dispatchArgs("const"),
	}

	ohmCmd := &cobra.Command{
		Use:   "ohm [two of v= i= r=]",
		Short: "Ohm's law V = I*R",
		Args:  cobra.ExactArgs(2),
		RunE:  dispatchArgs("ohm"),
	}

	suvatCmd := &cobra.Command{
		Use:   "suvat [three of s= u= v= a= t=]",
		Short: "kinematics fill-in",
		Args:  cobra.MinimumNArgs(3),
		RunE:  dispatchArgs("suvat"),
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "list recent computations",
		RunE:  listHistory,
	}
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "max entries (default from config)")

	chatCmd := &cobra.Command{
		Use:   "chat",
		Short: "interactive chat mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, reg, err := setup()
			if err != nil {
				return err
			}
			return chat.Run(reg)
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "run the Discord bot (needs BOFFIN_TOKEN and BOFFIN_GUILD_ID)",
		RunE:  runServe,
	}

	rootCmd.AddCommand(balanceCmd, calcCmd, solveCmd, plotCmd, convertCmd, constCmd, ohmCmd, suvatCmd, historyCmd, chatCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup builds the configuration and command registry shared by every
// mode: yaml file (if given), environment overlay, then flags.
func setup() (*config.Config, *command.Registry, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if err := config.ParseEnv(cfg); err != nil {
		return nil, nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if plotFrom != 0 || plotTo != 0 {
		cfg.Plot.From = plotFrom
		cfg.Plot.To = plotTo
	}
	if plotSamples > 0 {
		cfg.Plot.Samples = plotSamples
	}
	if plotHeight > 0 {
		cfg.Plot.Height = plotHeight
	}

	hist := history.New(cfg.DataDir)
	return cfg, command.New(cfg, hist), nil
}

// dispatchArgs runs a registry command with the joined CLI arguments.
func dispatchArgs(name string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		_, reg, err := setup()
		if err != nil {
			return err
		}
		resp, err := reg.Dispatch(context.Background(), name, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Println(resp.Format())
		return nil
	}
}

func listHistory(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	limit := cfg.HistoryLimit
	if historyLimit > 0 {
		limit = historyLimit
	}

	entries, err := history.New(cfg.DataDir).List(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no history yet")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tCOMMAND\tINPUT\tOUTPUT")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"),
			e.Command,
			e.Input,
			e.Output,
		)
	}
	return w.Flush()
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, reg, err := setup()
	if err != nil {
		return err
	}

	bot, err := discord.New(cfg, reg)
	if err != nil {
		return err
	}
	if err := bot.Start(cmd.Context()); err != nil {
		return err
	}
	defer func() {
		if err := bot.Stop(); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	return nil
}
