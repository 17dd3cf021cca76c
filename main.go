// Package main is the entry point for vireo.
package main

import (
	"github.com/samber/lo"
	"github.com/vireo-player/vireo/cmd"
	"github.com/vireo-player/vireo/config"
	"github.com/vireo-player/vireo/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
