package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/kulgod/clues-solver/solver"
)

var (
	workers   int
	timeout   time.Duration
	justify   bool
	threshold int
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve <board.yaml>",
	Short: "Find the forced move on a puzzle board, if any",
	Long: `Solve loads a board file, checks the clues against every candidate
assignment of the unrevealed suspects, and reports whether any verdict is
forced.

Example:
  cluesolver solve puzzle.yaml
  cluesolver solve puzzle.yaml --justify
  cluesolver solve puzzle.yaml --workers 4 --timeout 30s`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().IntVar(&workers, "workers", 0, "enumeration goroutines (default: one per CPU)")
	solveCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "solve deadline")
	solveCmd.Flags().BoolVar(&justify, "justify", false, "report a minimal clue subset forcing the move")
	solveCmd.Flags().IntVar(&threshold, "backtrack-threshold", 24, "unrevealed count above which pruned backtracking replaces enumeration")

	_ = viper.BindPFlag("workers", solveCmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("timeout", solveCmd.Flags().Lookup("timeout"))
	_ = viper.BindPFlag("justify", solveCmd.Flags().Lookup("justify"))
	_ = viper.BindPFlag("backtrack_threshold", solveCmd.Flags().Lookup("backtrack-threshold"))
}

func runSolve(cmd *cobra.Command, args []string) error {
	b, clues, err := loadBoardFile(args[0])
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()
	}

	ctx, cancel := context.WithTimeout(context.Background(), viper.GetDuration("timeout"))
	defer cancel()

	opts := []solver.Option{
		solver.WithContext(ctx),
		solver.WithLogger(logger),
		solver.WithBacktrackThreshold(viper.GetInt("backtrack_threshold")),
	}
	if n := viper.GetInt("workers"); n > 0 {
		opts = append(opts, solver.WithWorkers(n))
	}
	if viper.GetBool("justify") {
		opts = append(opts, solver.WithJustification())
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Board: %dx%d, %d unrevealed, %d clues\n",
			b.Rows(), b.Cols(), len(b.Unknowns()), len(clues))
	}

	rec, err := solver.Solve(b, clues, opts...)
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	fmt.Println(b.String())
	switch rec.Outcome {
	case solver.CertainMove:
		fmt.Printf("%s: %s is %s\n", rec.Outcome, rec.Name, rec.Label)
		for _, i := range rec.Justification {
			c := clues[i]
			fmt.Printf("  because of %s's clue (#%d)\n", c.Source, i)
		}
	default:
		fmt.Println(rec.Outcome)
	}
	return nil
}
