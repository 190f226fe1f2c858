package cli

import (
	"github.com/helloproject/hello"
	"github.com/helloproject/hello/core"

	"github.com/urfave/cli/v2"
)

const defaultPort = 8080

var serveFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "port",
		Aliases: []string{"p"},
		Value:   defaultPort,
		Usage:   "port to listen on",
		EnvVars: []string{"HELLO_PORT"},
	},
	configFlag,
}

var configFlag = &cli.StringFlag{
	Name:    "config",
	Aliases: []string{"c"},
	Value:   core.DefaultConfigPath,
	Usage:   "path to the yaml config file",
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Start HelloProject in dev mode (no caching, live reload)",
	Flags: serveFlags,
	Action: func(c *cli.Context) error {
		hello.Start(hello.RuntimeConfig{
			Env:         "dev",
			EnableCache: false,
			Port:        c.Int("port"),
			ConfigPath:  c.String("config"),
		})
		return nil
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Start HelloProject in production mode (caching on by default)",
	Flags: serveFlags,
	Action: func(c *cli.Context) error {
		hello.Start(hello.RuntimeConfig{
			Env:         "prod",
			EnableCache: true,
			Port:        c.Int("port"),
			ConfigPath:  c.String("config"),
		})
		return nil
	},
}
