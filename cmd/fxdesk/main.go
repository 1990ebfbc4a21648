package main

import "github.com/rustyeddy/fxdesk/internal/cli"

func main() {
	cli.Execute()
}
