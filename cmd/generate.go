package cmd

import (
	"github.com/mcuc-cli/mcuc/format"
	"github.com/mcuc-cli/mcuc/key"
	"github.com/mcuc-cli/mcuc/log"
	"github.com/mcuc-cli/mcuc/scheme"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("out", "o", "", "Write output to file instead of stdout")
	generateCmd.Flags().BoolP("palette", "p", false, "Generate full tonal palette instead of theme")
	generateCmd.Flags().BoolP("random", "r", false, "Use random color instead of input")
	generateCmd.Flags().StringP("image", "i", "", "Extract dominant color from image, overrides input")
	generateCmd.Flags().Float64("hue", 0, "Hue override (0-360)")
	generateCmd.Flags().Float64("chroma", 0, "Chroma override (0-150)")
	generateCmd.Flags().Float64("tone", 0, "Tone override (0-100)")

	generateCmd.Flags().StringP("format", "f", "", "Output format: json|table|yaml|css|scss|less|styl|js|ts|xml|html")
	lo.Must0(viper.BindPFlag(key.GenerateFormat, generateCmd.Flags().Lookup("format")))
	lo.Must0(generateCmd.RegisterFlagCompletionFunc("format", completionSyntaxes(format.Syntaxes())))

	generateCmd.Flags().StringP("prefix", "P", "", "Prefix for variable names")
	lo.Must0(viper.BindPFlag(key.GeneratePrefix, generateCmd.Flags().Lookup("prefix")))

	generateCmd.Flags().StringP("case", "C", "", "Variable casing: camel|pascal|kebab")
	lo.Must0(viper.BindPFlag(key.GenerateCase, generateCmd.Flags().Lookup("case")))
	lo.Must0(generateCmd.RegisterFlagCompletionFunc("case", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(format.Cases(), func(c format.Case, _ int) string { return string(c) }), cobra.ShellCompDirectiveNoFileComp
	}))

	generateCmd.Flags().StringP("theme", "T", "", "Theme: light|dark|both")
	lo.Must0(viper.BindPFlag(key.GenerateTheme, generateCmd.Flags().Lookup("theme")))
	lo.Must0(generateCmd.RegisterFlagCompletionFunc("theme", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(scheme.SelectLight), string(scheme.SelectDark), string(scheme.SelectBoth)}, cobra.ShellCompDirectiveNoFileComp
	}))
}

func completionSyntaxes(syntaxes []format.Syntax) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(syntaxes, func(s format.Syntax, _ int) string { return string(s) }), cobra.ShellCompDirectiveNoFileComp
	}
}

// optionalFloat returns the flag value only when it was set explicitly.
func optionalFloat(flags *pflag.FlagSet, name string) mo.Option[float64] {
	if !flags.Changed(name) {
		return mo.None[float64]()
	}
	return mo.Some(lo.Must(flags.GetFloat64(name)))
}

// generateCmd produces a Material 3 theme or tonal palette from a seed color.
var generateCmd = &cobra.Command{
	Use:   "generate [input]",
	Short: "Generate Material 3 theme from a color or image",
	Example: `  mcuc generate "#6750a4" -f css -T both
  mcuc generate -i wallpaper.png -f scss -C camel -P md-
  mcuc generate -r -p -f yaml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var (
			flags   = cmd.Flags()
			palette = lo.Must(flags.GetBool("palette"))
			out     = lo.Must(flags.GetString("out"))
			what    = lo.Ternary(palette, "Palette", "Theme")
			src     = source{
				input:  lo.FirstOr(args, ""),
				image:  lo.Must(flags.GetString("image")),
				random: lo.Must(flags.GetBool("random")),
			}
		)

		seed, err := src.seed()
		handleErr(err)

		selection, err := scheme.ParseSelection(viper.GetString(key.GenerateTheme))
		handleErr(err)

		options := scheme.Options{
			Hue:       optionalFloat(flags, "hue"),
			Chroma:    optionalFloat(flags, "chroma"),
			Tone:      optionalFloat(flags, "tone"),
			Selection: selection,
		}

		generate := lo.Ternary(palette, scheme.Palette, scheme.Generate)
		log.Infof("Generating %s from %s...", lo.Ternary(palette, "palette", "theme"), seed)
		theme, err := generate(seed, options)
		handleErr(err)

		caseName := viper.GetString(key.GenerateCase)
		if !format.IsCase(caseName) {
			log.Warnf("unknown case %q, falling back to %q", caseName, format.Kebab)
		}

		syntax := viper.GetString(key.GenerateFormat)
		text := format.Theme(theme, format.Options{
			Syntax: syntax,
			Prefix: viper.GetString(key.GeneratePrefix),
			Case:   format.ParseCase(caseName),
			Out:    cmd.OutOrStdout(),
		})
		warnUnsupported(text, syntax, format.Syntaxes())

		handleErr(emit(cmd.OutOrStdout(), out, text, what))
	},
}
