package cmd

import (
	"errors"
	"fmt"

	"github.com/mcuc-cli/mcuc/contrast"
	"github.com/mcuc-cli/mcuc/format"
	"github.com/mcuc-cli/mcuc/key"
	"github.com/mcuc-cli/mcuc/log"
	"github.com/mcuc-cli/mcuc/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(contrastCmd)

	contrastCmd.Flags().StringSliceP("bg", "b", nil, "Background color(s) to test against")
	contrastCmd.Flags().BoolP("wcag-only", "w", false, "Output only WCAG compliance levels")

	contrastCmd.Flags().StringP("format", "f", "", "Output format: json|table|yaml")
	lo.Must0(viper.BindPFlag(key.ContrastFormat, contrastCmd.Flags().Lookup("format")))
	lo.Must0(contrastCmd.RegisterFlagCompletionFunc("format", completionSyntaxes(format.DataSyntaxes())))
}

var errContrastArgs = errors.New("contrast requires two colors or one color with --bg")

// checkContrast runs the checks requested by args and backgrounds.
// One color with backgrounds always yields a list.
func checkContrast(args, backgrounds []string) (format.ContrastData, error) {
	if len(backgrounds) > 0 && len(args) == 1 {
		results, err := contrast.CheckAll(args[0], backgrounds)
		if err != nil {
			return format.ContrastData{}, err
		}
		log.Infof("Checked %s against %s", args[0], util.Quantify(len(results), "background", "backgrounds"))
		return format.ContrastData{Results: results, List: true}, nil
	}

	if len(args) != 2 {
		return format.ContrastData{}, errContrastArgs
	}

	result, err := contrast.Check(args[0], args[1])
	if err != nil {
		return format.ContrastData{}, fmt.Errorf("contrast: %w", err)
	}
	return format.ContrastData{Results: []contrast.Result{result}}, nil
}

// contrastCmd checks the WCAG contrast ratio between colors.
var contrastCmd = &cobra.Command{
	Use:   "contrast <colorA> [colorB]",
	Short: "Check contrast ratio between two hex colors",
	Example: `  mcuc contrast "#000000" "#ffffff"
  mcuc contrast "#6750a4" -b "#ffffff" -b "#1c1b1f" -w -f table`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := checkContrast(args, lo.Must(cmd.Flags().GetStringSlice("bg")))
		handleErr(err)

		data.WCAGOnly = lo.Must(cmd.Flags().GetBool("wcag-only"))

		syntax := viper.GetString(key.ContrastFormat)
		text := format.Contrast(data, syntax, cmd.OutOrStdout())
		warnUnsupported(text, syntax, format.DataSyntaxes())

		log.Success(lo.Ternary(data.List, "Contrast against backgrounds:", "Contrast output:"))
		if text != "" {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
		}
	},
}
