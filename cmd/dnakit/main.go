package main

import "dnakit/internal/cli"

func main() {
	cli.Execute()
}
