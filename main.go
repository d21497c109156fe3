package main

import (
	"os"

	"github.com/df07/go-raycaster/cmd"
	"github.com/df07/go-raycaster/pkg/log"
)

func main() {
	if err := cmd.NewApp().Run(os.Args); err != nil {
		log.New("raycaster").Error(err)
		os.Exit(1)
	}
}
