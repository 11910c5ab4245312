package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/caasmo/imprint"
)

func main() {
	configPath := flag.String("config", "", "path to TOML configuration file (empty for defaults)")
	flag.Parse()

	_, srv, err := imprint.New(*configPath, imprint.WithPhusLogger(nil))
	if err != nil {
		fmt.Fprintf(os.Stderr, "imprint: %v\n", err)
		os.Exit(1)
	}

	srv.Run()
}
