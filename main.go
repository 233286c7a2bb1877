// Package main is entrypoint for the application
package main

import (
	"netuitive/cmd"
)

func main() {
	cmd.Run()
}
