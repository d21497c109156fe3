package cmd

import (
	"github.com/df07/go-raycaster/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("raycaster")

// Apply the global verbosity flags. The level is process wide, so it is set
// on every invocation.
func setupLogging(ctx *cli.Context) {
	level := log.Notice
	switch {
	case ctx.GlobalBool("vv"):
		level = log.Debug
	case ctx.GlobalBool("v"):
		level = log.Info
	}
	log.SetLevel(level)
}
