package main

import "github.com/foodlens/foodlens-cli/cmd"

func main() {
	cmd.Execute()
}
