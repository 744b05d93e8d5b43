package main

import "github.com/soneb/vamp/internal/cli"

func main() {
	cli.Execute()
}
