// Package main is the entry point for the anidex application.
package main

import (
	"github.com/anidex-cli/anidex/cmd"
	"github.com/anidex-cli/anidex/config"
	"github.com/anidex-cli/anidex/internal/cache"
	"github.com/anidex-cli/anidex/log"
	"github.com/anidex-cli/anidex/where"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cache.CollectGarbage(where.Logs())

	cmd.Execute()
}
