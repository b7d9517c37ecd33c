package main

import "github.com/carson-networks/bank-demo/internal/commands"

func main() {
	commands.Execute()
}
