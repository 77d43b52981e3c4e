package main

import "railroute/pkg/commands"

func main() {
	commands.Execute()
}
