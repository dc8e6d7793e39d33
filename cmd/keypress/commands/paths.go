package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/katalvlaran/keypress/keypad"
	"github.com/katalvlaran/keypress/paths"
)

func (c *CLI) newPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths [from to]",
		Short: "Print every shortest direction string between keys",
		Long: "Prints one line per key pair: the pair, its distance and all of its shortest routes.\n" +
			"With two keys only that pair is printed.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return zerr.With(zerr.New("expected no arguments or a from and a to key"), "args", len(args))
			}
			return nil
		},
		RunE: c.runPaths,
	}
	cmd.Flags().StringP("keypad", "k", "numeric", "Keypad: numeric or directional")

	return cmd
}

func (c *CLI) runPaths(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("keypad")
	var (
		g   *keypad.Graph
		err error
	)
	switch name {
	case "numeric":
		g, err = c.cfg.NumericKeypad()
	case "directional":
		g, err = c.cfg.DirectionalKeypad()
	default:
		return zerr.With(zerr.New("unknown keypad"), "keypad", name)
	}
	if err != nil {
		return err
	}

	table, err := paths.Build(g)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to build path table"), "keypad", name)
	}
	c.log.Debug("path table built", "keypad", g.String(), "pairs", table.Len())

	out := cmd.OutOrStdout()
	if len(args) == 2 {
		from, to, err := pairArgs(args)
		if err != nil {
			return err
		}
		return printPair(out, table, paths.Pair{From: from, To: to})
	}
	for _, p := range table.Pairs() {
		if err := printPair(out, table, p); err != nil {
			return err
		}
	}

	return nil
}

func pairArgs(args []string) (keypad.Symbol, keypad.Symbol, error) {
	for _, a := range args {
		if len(a) != 1 {
			return 0, 0, zerr.With(zerr.New("a key is a single character"), "key", a)
		}
	}

	return keypad.Symbol(args[0][0]), keypad.Symbol(args[1][0]), nil
}

func printPair(w io.Writer, table *paths.Table, p paths.Pair) error {
	routes, err := table.Paths(p.From, p.To)
	if err != nil {
		return zerr.Wrap(err, "lookup failed")
	}
	dist, err := table.Distance(p.From, p.To)
	if err != nil {
		return zerr.Wrap(err, "lookup failed")
	}
	_, _ = fmt.Fprintf(w, "%s %d %q\n", p, dist, routes)

	return nil
}
