package main

import "github.com/ib-77/lift/internal/cmd"

func main() {
	cmd.Execute()
}
