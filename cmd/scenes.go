package cmd

import (
	"bytes"
	"fmt"

	"github.com/df07/go-interactive-raytracer/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// ListScenes prints the scene catalog.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)
	logger.Noticef("scene catalog\n%s", sceneTable(scene.Catalog()))
	return nil
}

func sceneTable(infos []scene.SceneInfo) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Index", "ID", "Name", "Description"})
	for _, info := range infos {
		table.Append([]string{
			fmt.Sprintf("%d", info.Index),
			info.ID,
			info.DisplayName,
			info.Description,
		})
	}
	table.Render()
	return buf.String()
}
