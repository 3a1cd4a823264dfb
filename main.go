package main

import "github.com/cppla/qaserver/commands"

func main() {
	commands.Execute()
}
