package main

import "github.com/investlab/investment-gateway/src/cmd/server/commands"

func main() {
	commands.Execute()
}
