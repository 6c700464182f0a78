// Package cmd implements the command-line interface for mcuc.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/mcuc-cli/mcuc/color"
	"github.com/mcuc-cli/mcuc/constant"
	"github.com/mcuc-cli/mcuc/icon"
	"github.com/mcuc-cli/mcuc/key"
	"github.com/mcuc-cli/mcuc/log"
	"github.com/mcuc-cli/mcuc/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().BoolP("log", "l", false, "Enable detailed logging for progress")
	lo.Must0(viper.BindPFlag(key.LogsEnabled, rootCmd.PersistentFlags().Lookup("log")))

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))
}

// rootCmd defines the entry point for the mcuc application.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Material Color Utilities CLI - Generate and inspect Material 3 color themes",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    - Generate and inspect Material 3 color themes"),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		handleErr(log.Setup())
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("version")) {
			versionCmd.Run(versionCmd, args)
			return
		}

		_ = cmd.Help()
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		reportErr(os.Stderr, err)
		os.Exit(1)
	}
}

// reportErr emits err exactly once: through the logger when logging is
// enabled, otherwise as a single icon line on w.
func reportErr(w io.Writer, err error) {
	if log.Enabled() {
		log.Error(err)
		return
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
}
