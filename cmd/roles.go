package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mcuc-cli/mcuc/color"
	"github.com/mcuc-cli/mcuc/log"
	"github.com/mcuc-cli/mcuc/scheme"
	"github.com/mcuc-cli/mcuc/style"
	"github.com/mcuc-cli/mcuc/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rolesCmd)
	rolesCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
}

type roleOutput struct {
	Role    scheme.Role        `json:"role"`
	Palette scheme.PaletteName `json:"palette"`
	Light   int                `json:"light"`
	Dark    int                `json:"dark"`
}

// matchRoles returns the role specs whose name fuzzily matches query.
func matchRoles(query string) []scheme.Spec {
	if query == "" {
		return scheme.Specs()
	}

	return lo.Filter(scheme.Specs(), func(s scheme.Spec, _ int) bool {
		return fuzzy.MatchFold(query, string(s.Role))
	})
}

// rolesCmd lists the color roles of a scheme with their palette tones.
var rolesCmd = &cobra.Command{
	Use:     "roles [query]",
	Short:   "List scheme color roles with their tonal palette and tones",
	Example: `  mcuc roles cont`,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		specs := matchRoles(lo.FirstOr(args, ""))
		log.Infof("Matched %s", util.Quantify(len(specs), "role", "roles"))

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(lo.Map(specs, func(s scheme.Spec, _ int) roleOutput {
				return roleOutput{Role: s.Role, Palette: s.Palette, Light: s.Light, Dark: s.Dark}
			})))
			return
		}

		width := util.Max(lo.Map(specs, func(s scheme.Spec, _ int) int { return len(s.Role) })...)
		for _, s := range specs {
			_, _ = fmt.Fprintf(
				cmd.OutOrStdout(),
				"%s %s %s\n",
				style.Fg(color.Purple)(fmt.Sprintf("%-*s", width, s.Role)),
				style.Faint(fmt.Sprintf("%-15s", s.Palette)),
				style.Fg(color.Yellow)(fmt.Sprintf("%d/%d", s.Light, s.Dark)),
			)
		}
	},
}
