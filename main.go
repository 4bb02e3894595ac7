package main

import "github.com/flavorithm/flavorithm/cmd"

func main() {
	cmd.Execute()
}
