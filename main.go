package main

import "github.com/alexiusacademia/gosap/cmd"

func main() {
	cmd.Execute()
}
