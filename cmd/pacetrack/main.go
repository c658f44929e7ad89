package main

import "github.com/emiliopalmerini/pacetrack/internal/cli"

func main() {
	cli.Execute()
}
