package main

import "github.com/zbxzc35/tensorfx/cmd/cli/cmd"

func main() {
	cmd.Execute()
}
