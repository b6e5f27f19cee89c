package main

import (
	"log"
	"os"

	"restaurant-orders-api/cli"
)

func main() {
	root := cli.NewRootCommand()
	// No subcommand means serve, as the binary always did.
	if len(os.Args) == 1 {
		root.SetArgs([]string{"serve"})
	}
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
