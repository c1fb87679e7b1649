// Tuido is a terminal todo list.
//
// Usage:
//
//	tuido [command] [flags]
//
// Running without a command opens the interactive list. See
// 'tuido --help' for the scripted commands.
package main

import "github.com/idilsaglam/tuido/internal/cli"

func main() {
	cli.Main()
}
