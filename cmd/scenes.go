package cmd

import (
	"fmt"

	"github.com/df07/go-raycaster/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the built-in scenes.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"ID", "Name", "Shapes", "Description"})
	for _, info := range scene.ListScenes() {
		table.Append([]string{
			info.ID,
			info.Name,
			fmt.Sprintf("%d", info.Shapes),
			info.Description,
		})
	}

	table.Render()
	return nil
}
