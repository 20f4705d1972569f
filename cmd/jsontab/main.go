package main

import (
	"fmt"
	"os"

	"github.com/bjaus/jsontab"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	format     string
	from       string
	output     string
	configPath string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "jsontab [input]",
	Short: "Flatten JSON or YAML documents into delimited or fixed-width tables",
	Long: `jsontab reads a JSON, JSON Lines or YAML document and writes it as a
flat table. Elements of a top-level array are the records; nested objects
become grouped columns under multi-row headers and arrays spill onto
additional rows.

The input is read from the named file, or from stdin when it is "-" or
omitted. The syntax is taken from --from, else from the file extension.

Example:
  jsontab --format table orders.json
  jsontab -f csv -o orders.csv --config opts.yaml orders.yaml`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
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
	RunE: runConvert,
}

func init() {
	rootCmd.Flags().StringVarP(&format, "format", "f", string(jsontab.CSV), "output format (csv, tsv, table, html)")
	rootCmd.Flags().StringVar(&from, "from", "", "input syntax (json, jsonl, yaml); default from the file extension")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output file; default stdout")
	rootCmd.Flags().StringVar(&configPath, "config", "", "YAML file overriding the format's rendering options")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	f, err := jsontab.ParseFormat(format)
	if err != nil {
		return err
	}
	src := "-"
	if len(args) > 0 {
		src = args[0]
	}
	syntax := jsontab.SyntaxFromPath(src)
	if from != "" {
		if syntax, err = jsontab.ParseSyntax(from); err != nil {
			return err
		}
	}
	opts := f.Options()
	if configPath != "" {
		if opts, err = loadOptions(configPath, opts); err != nil {
			return err
		}
		logger.Debug("loaded options", zap.String("config", configPath))
	}

	logger.Debug("converting",
		zap.String("input", src),
		zap.String("syntax", string(syntax)),
		zap.Stringer("format", f),
	)
	rep, err := convertFile(cmd.InOrStdin(), cmd.OutOrStdout(), src, output, f, syntax, opts)
	if err != nil {
		logger.Error("conversion failed", zap.String("input", src), zap.Error(err))
		return err
	}
	logger.Info("converted",
		zap.String("input", src),
		zap.String("output", rep.Output),
		zap.Stringer("format", f),
		zap.Int("input_bytes", rep.InputBytes),
		zap.Int("output_bytes", rep.OutputBytes),
	)
	return nil
}
