package main

import "github.com/mcoot/gridgames-go/internal/cli"

func main() {
	cli.Execute()
}
