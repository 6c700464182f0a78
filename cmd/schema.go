package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/mcuc-cli/mcuc/colorinfo"
	"github.com/mcuc-cli/mcuc/contrast"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

// schemaNames lists the schema targets in the order they are offered.
var schemaNames = []string{"info", "contrast", "levels"}

var schemaTargets = map[string]any{
	"info":     &colorinfo.Info{},
	"contrast": &contrast.Result{},
	"levels":   &contrast.Levels{},
}

// schemaOf reflects the JSON Schema of the named machine-readable output.
func schemaOf(name string) (*jsonschema.Schema, error) {
	target, ok := schemaTargets[name]
	if !ok {
		return nil, fmt.Errorf("unknown schema %q, expected one of %s", name, strings.Join(schemaNames, ", "))
	}

	reflector := new(jsonschema.Reflector)
	reflector.ExpandedStruct = true
	return reflector.Reflect(target), nil
}

// schemaCmd prints JSON Schemas for the json outputs of info and contrast.
var schemaCmd = &cobra.Command{
	Use:       "schema [info|contrast|levels]",
	Short:     "Generate JSON schemas for structured command outputs",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: schemaNames,
	Run: func(cmd *cobra.Command, args []string) {
		schema, err := schemaOf(lo.FirstOr(args, "info"))
		handleErr(err)

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
