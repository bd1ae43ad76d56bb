package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Garbee/script-detection/internal/config"
	"github.com/Garbee/script-detection/internal/logging"
	"github.com/Garbee/script-detection/internal/report"
	"github.com/Garbee/script-detection/internal/scanner"
	"github.com/Garbee/script-detection/pkg/scriptdetect"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a dependency tree for lifecycle scripts",
	Long: `Scan walks the given directory (default: current directory), parses every
package.json beneath it, and reports each package that declares a
preinstall, install, or postinstall script.

Malformed or unreadable manifests are logged to stderr and skipped; a single
corrupt manifest never aborts the audit. Only a root directory that cannot
be traversed at all fails the scan.

Configuration is layered: flags override SCRIPT_DETECTION_* environment
variables, which override an optional script-detection.yaml in the scan
root.

Examples:
  # Audit the node_modules of the current project
  script-detection scan ./node_modules

  # Machine-readable output for CI
  script-detection scan ./node_modules --format json

  # Fail the pipeline when any lifecycle script is present
  script-detection scan ./node_modules --fail-on-findings

  # Write a Markdown report to a file
  script-detection scan ./node_modules --format markdown --output audit.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

type scanFlagValues struct {
	format         string
	output         string
	envFile        string
	failOnFindings bool
	quiet          bool
}

var scanFlags scanFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanFlags.format, "format", "f", "",
		"Report format: text|json|yaml|markdown (default: text)")
	scanCmd.Flags().StringVarP(&scanFlags.output, "output", "o", "",
		"Write the report to a file instead of stdout")
	scanCmd.Flags().BoolVar(&scanFlags.failOnFindings, "fail-on-findings", false,
		"Exit with code 12 when any package declares a lifecycle script")
	scanCmd.Flags().StringVar(&scanFlags.envFile, "env-file", "",
		"Load environment variables from a .env file before resolving configuration")
	scanCmd.Flags().BoolVarP(&scanFlags.quiet, "quiet", "q", false,
		"Suppress per-file diagnostics on stderr")
}

// resetScanFlags restores flag defaults. Used by tests.
func resetScanFlags() {
	scanFlags = scanFlagValues{}
}

func runScan(cmd *cobra.Command, args []string) error {
	rootPath := "."
	if len(args) > 0 {
		rootPath = args[0]
	}

	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return fmt.Errorf("%w: invalid path %s: %v", scriptdetect.ErrInvalidConfig, rootPath, err)
	}

	verbose := getVerboseFlag(cmd)

	if scanFlags.envFile != "" {
		if err := godotenv.Load(scanFlags.envFile); err != nil {
			return fmt.Errorf("%w: failed to load env file %s: %v", scriptdetect.ErrInvalidConfig, scanFlags.envFile, err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "[VERBOSE] Loaded environment from %s\n", scanFlags.envFile)
		}
	}

	cfg, err := resolveScanConfig(cmd, absRoot, verbose)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return fmt.Errorf("%w: %v", scriptdetect.ErrInvalidConfig, err)
	}

	var logger scriptdetect.Logger
	if scanFlags.quiet {
		logger = logging.NewNullLogger()
	} else {
		logger = logging.NewConsoleLogger(verbose)
	}

	s := scanner.NewScanner(logger)
	findings, err := s.Scan(absRoot)
	if err != nil {
		return err
	}

	meta := report.NewMeta(absRoot, len(findings))

	var out io.Writer = os.Stdout
	toStdout := true
	if cfg.Output != "" {
		file, err := os.Create(cfg.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		out = file
		toStdout = false
	}

	color := format == report.FormatText && report.UseColor(toStdout)
	if err := report.Render(out, format, meta, findings, color); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if cfg.FailOnFindings && len(findings) > 0 {
		return fmt.Errorf("%w: %d package(s) declare lifecycle scripts", scriptdetect.ErrFindingsPresent, len(findings))
	}
	return nil
}

// resolveScanConfig layers the configuration sources.
// Priority (highest to lowest): CLI flags > environment > script-detection.yaml
func resolveScanConfig(cmd *cobra.Command, absRoot string, verbose bool) (*config.ProjectConfig, error) {
	cfg, err := config.Load(absRoot)
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %v", scriptdetect.ErrInvalidConfig, err)
		}
		cfg = &config.ProjectConfig{}
	} else if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Loaded %s from %s\n", config.ConfigFileName, absRoot)
	}

	if err := config.ApplyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", scriptdetect.ErrInvalidConfig, err)
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = scanFlags.format
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = scanFlags.output
	}
	if cmd.Flags().Changed("fail-on-findings") {
		cfg.FailOnFindings = scanFlags.failOnFindings
	}

	return cfg, nil
}
