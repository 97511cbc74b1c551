package main

import "github.com/sabinstha/brewdash/internal/cmd"

func main() {
	cmd.Execute()
}
