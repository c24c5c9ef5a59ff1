package main

import "github.com/zentry/appicon/internal/cli"

func main() {
	cli.Execute()
}
