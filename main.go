// Package main is the entry point for the mcuc application.
package main

import (
	"github.com/mcuc-cli/mcuc/cmd"
	"github.com/mcuc-cli/mcuc/config"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	cmd.Execute()
}
