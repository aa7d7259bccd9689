package main

import "tro/cmd/tro/cmd"

func main() {
	cmd.Execute()
}
