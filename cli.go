//go:build cli
// +build cli

package main

import (
	_ "climastore.GO/custom"

	"climastore.GO/cmd"
	"climastore.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
