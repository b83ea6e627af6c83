package main

import "github.com/relaylabs/relaylog/internal/cli"

func main() {
	cli.Execute()
}
