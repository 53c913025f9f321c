package main

import "github.com/chriserin/gwtgen/cmd"

func main() {
	cmd.Execute()
}
