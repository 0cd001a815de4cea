package main

import "levonctl/internal/cli"

func main() {
	cli.Execute()
}
