package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "script-detection",
	Short: "Audit installed npm dependency trees for lifecycle hook scripts",
	Long: `script-detection walks a dependency tree, reads every package.json it
finds, and reports the packages that declare npm lifecycle hook scripts
(preinstall, install, postinstall). These scripts execute automatically on
install, which makes them a common supply-chain attack vector.

The tool only surfaces presence. It does not judge whether a script is
malicious.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Scan root inaccessible
  12 - Findings present (with --fail-on-findings)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
