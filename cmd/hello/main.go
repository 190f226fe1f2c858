package main

import (
	"log"
	"os"

	hellocli "github.com/helloproject/hello/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "hello",
		Usage: "Server-rendered HelloProject front end",
		Commands: []*clilib.Command{
			hellocli.DevCommand,
			hellocli.ProdCommand,
			hellocli.CheckCommand,
			hellocli.InfoCommand,
			hellocli.CleanCommand,
			hellocli.PeekCommand,
		},
	}
	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
