package main

import "rollr/cmd/cli"

func main() {
	cli.RunCLI()
}
