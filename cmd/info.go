package cmd

import (
	"fmt"

	"github.com/mcuc-cli/mcuc/argb"
	"github.com/mcuc-cli/mcuc/colorinfo"
	"github.com/mcuc-cli/mcuc/format"
	"github.com/mcuc-cli/mcuc/key"
	"github.com/mcuc-cli/mcuc/log"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringP("image", "i", "", "Extract dominant color from image, overrides input")
	infoCmd.Flags().BoolP("extended", "e", false, "Show extended color info (LAB, LCH, OKLCH, luminance)")
	infoCmd.Flags().StringP("distance", "d", "", "Compare input color to another color and show ΔE (color difference)")

	infoCmd.Flags().StringP("format", "f", "", "Output format: json|table|yaml")
	lo.Must0(viper.BindPFlag(key.InfoFormat, infoCmd.Flags().Lookup("format")))
	lo.Must0(infoCmd.RegisterFlagCompletionFunc("format", completionSyntaxes(format.DataSyntaxes())))
}

// infoCmd describes a single color.
var infoCmd = &cobra.Command{
	Use:     "info [input]",
	Short:   "Show color info for a hex color or image",
	Example: `  mcuc info "#6750a4" -e -d "#ffffff" -f table`,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := source{
			input: lo.FirstOr(args, ""),
			image: lo.Must(cmd.Flags().GetString("image")),
		}

		c, err := src.seed()
		handleErr(err)

		options := colorinfo.Options{
			Extended: lo.Must(cmd.Flags().GetBool("extended")),
			Distance: mo.None[argb.ARGB](),
		}

		if other := lo.Must(cmd.Flags().GetString("distance")); other != "" {
			d, err := argb.Parse(other)
			handleErr(err)
			options.Distance = mo.Some(d)
		}

		syntax := viper.GetString(key.InfoFormat)
		text := format.Info(colorinfo.Describe(c, options), syntax, cmd.OutOrStdout())
		warnUnsupported(text, syntax, format.DataSyntaxes())

		log.Success("Color info output:")
		if text != "" {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
		}
	},
}
