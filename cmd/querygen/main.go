package main

import (
	"fmt"
	"os"

	"github.com/lintang-b-s/querygen/pkg/logger"
	"github.com/lintang-b-s/querygen/pkg/querygen"
	"github.com/lintang-b-s/querygen/pkg/util"
)

// Generate a random set of source & destination pairs to test shortest path query operators.
// Usage: querygen -n <num_values> -m <max_node_id> <output>
func main() {
	cfg, err := util.ReadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		panic(err)
	}

	app := querygen.NewApp(os.Stdin, os.Stdout, os.Stderr, log, cfg)
	code := app.Run(os.Args[1:])
	_ = log.Sync()
	os.Exit(code)
}
