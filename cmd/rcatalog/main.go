package main

import "rcatalog/internal/cli"

func main() {
	cli.Execute()
}
