package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/helloproject/hello/core"
	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print the effective configuration and asset cache summary",
	Flags: []cli.Flag{configFlag},
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(c.String("config"))

		fmt.Println("🌐 API Endpoint:", core.NewAPIClient(config.APIBase, nil).URL())
		fmt.Println("📁 Output Directory:", config.OutputDir)
		fmt.Println("🗂️  Public Directory:", config.PublicDir)
		fmt.Println("🔁 Cache Enabled:", config.CacheEnabled)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println("🔁 Debug Logs Enabled:", config.DebugLogs)
		fmt.Println("⏳ Wait For API:", config.WaitForAPI)
		fmt.Println("⏱️  View TTL:", fmt.Sprintf("%ds", config.ViewTTLSeconds))
		fmt.Println()

		cacheCount := 0
		filepath.Walk(filepath.Join(config.OutputDir, "static"), func(path string, info os.FileInfo, err error) error {
			if err == nil && !info.IsDir() && !strings.HasSuffix(path, ".gz") {
				cacheCount++
			}
			return nil
		})

		fmt.Println("💾 Cached Assets:", cacheCount)

		return nil
	},
}
