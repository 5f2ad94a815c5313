// Command shapes prints the perimeter and area of a fixed set of shapes,
// one line each, in the order they were built.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/shapes/shape"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// newLogger builds the command's logger: JSON to stderr, Warn and above.
var newLogger = func() (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return config.Build()
}

func newRootCmd() *cobra.Command {
	var logger *zap.Logger

	return &cobra.Command{
		Use:           "shapes",
		Short:         "Print perimeter and area of the demo shapes",
		Long:          "Builds a Square of side 3 and a Circle of radius 2 and prints \"<name> is a <Kind> <perimeter> <area>\" for each.",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd.OutOrStdout(), logger, demoShapes())
		},
	}
}

// demoShapes returns the fixed report input. Order is significant.
func demoShapes() []shape.Shape {
	return []shape.Shape{
		shape.NewSquare("sq", 3),
		shape.NewCircle("ci", 2),
	}
}

func runReport(w io.Writer, logger *zap.Logger, shapes []shape.Shape) error {
	if err := shape.Render(w, shapes); err != nil {
		logger.Error("Render failed", zap.Error(err))
		return fmt.Errorf("rendering report: %w", err)
	}
	logger.Debug("Report rendered", zap.Int("shapes", len(shapes)))

	return nil
}
