package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/katalvlaran/keypress/complexity"
)

func (c *CLI) newComplexityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complexity [codes...]",
		Short: "Score door codes by their shortest human input",
		Long: "Prints, for every code, the fewest button presses the human needs " +
			"times the code's numeric part, followed by the total.\n" +
			"Codes come from the arguments, else from --input, else from the configuration file.",
		RunE: c.runComplexity,
	}
	cmd.Flags().IntP("depth", "d", 0, "Directional keypads between the human and the numeric robot (default from config)")
	cmd.Flags().StringP("input", "i", "", "File with one code per line")
	cmd.Flags().String("strategy", "", "Numeric layer strategy: enumerate or minimize (default from config)")

	return cmd
}

func (c *CLI) runComplexity(cmd *cobra.Command, args []string) error {
	depth := c.cfg.Depth
	if cmd.Flags().Changed("depth") {
		depth, _ = cmd.Flags().GetInt("depth")
	}
	strategy, err := c.cfg.StrategyValue()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strategy") {
		name, _ := cmd.Flags().GetString("strategy")
		if strategy, err = complexity.ParseStrategy(name); err != nil {
			return zerr.With(zerr.Wrap(err, "invalid strategy"), "strategy", name)
		}
	}

	input, _ := cmd.Flags().GetString("input")
	codes, err := resolveCodes(args, input, c.cfg.Codes)
	if err != nil {
		return err
	}

	numeric, err := c.cfg.NumericKeypad()
	if err != nil {
		return err
	}
	directional, err := c.cfg.DirectionalKeypad()
	if err != nil {
		return err
	}
	c.log.Debug("keypads loaded", "numeric", numeric.String(), "directional", directional.String())

	e, err := complexity.NewFromKeypads(numeric, directional, complexity.WithStrategy(strategy))
	if err != nil {
		return zerr.Wrap(err, "failed to build evaluator")
	}
	rep, err := e.Evaluate(codes, depth)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "evaluation failed"), "depth", depth)
	}

	out := cmd.OutOrStdout()
	for _, entry := range rep.Entries {
		c.log.Debug("code evaluated", "code", entry.Code, "length", entry.Length, "value", entry.Value)
		_, _ = fmt.Fprintf(out, "%s: %d * %d = %d\n", entry.Code, entry.Length, entry.Value, entry.Complexity)
	}
	_, _ = fmt.Fprintf(out, "total: %d\n", rep.Total)

	st := e.Stats()
	c.log.Info("evaluation finished",
		"codes", len(codes),
		"depth", depth,
		"strategy", strategy.String(),
		"cache_entries", st.Entries,
		"cache_hits", st.Hits,
		"cache_misses", st.Misses,
	)

	return nil
}

// resolveCodes picks the first non-empty source of codes.
func resolveCodes(args []string, input string, configured []string) ([]string, error) {
	switch {
	case len(args) > 0:
		return args, nil
	case input != "":
		return readCodes(input)
	case len(configured) > 0:
		return configured, nil
	}

	return nil, zerr.New("no codes given: pass them as arguments, with --input or in the config file")
}

// readCodes reads one code per line, skipping blank lines and # comments.
func readCodes(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open input"), "path", path)
	}
	defer func() { _ = f.Close() }()

	var codes []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		codes = append(codes, line)
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read input"), "path", path)
	}
	if len(codes) == 0 {
		return nil, zerr.With(zerr.New("input has no codes"), "path", path)
	}

	return codes, nil
}
