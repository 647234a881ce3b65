package main

import (
	"numtscan/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
