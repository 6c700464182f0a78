package cmd

import (
	"github.com/mcuc-cli/mcuc/format"
	"github.com/mcuc-cli/mcuc/key"
	"github.com/mcuc-cli/mcuc/log"
	"github.com/mcuc-cli/mcuc/scheme"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringP("out", "o", "", "Write preview HTML to file instead of stdout")
	previewCmd.Flags().StringP("image", "i", "", "Extract dominant color from image, overrides input")

	previewCmd.Flags().BoolP("usage", "u", false, "Include example usage components (text, buttons, cards)")
	lo.Must0(viper.BindPFlag(key.PreviewUsage, previewCmd.Flags().Lookup("usage")))
}

// previewCmd renders an HTML swatch sheet of both theme variants.
var previewCmd = &cobra.Command{
	Use:     "preview [input]",
	Short:   "Generate an HTML preview of a theme from a color or image",
	Example: `  mcuc preview "#6750a4" -u -o preview.html`,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := source{
			input: lo.FirstOr(args, ""),
			image: lo.Must(cmd.Flags().GetString("image")),
		}

		seed, err := src.seed()
		handleErr(err)

		log.Info("Generating theme for preview...")
		theme, err := scheme.Generate(seed, scheme.Options{Selection: scheme.SelectBoth})
		handleErr(err)

		html, err := format.Preview(theme, viper.GetBool(key.PreviewUsage))
		handleErr(err)

		handleErr(emit(cmd.OutOrStdout(), lo.Must(cmd.Flags().GetString("out")), html, "Preview HTML"))
	},
}
