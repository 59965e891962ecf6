/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import (
	"github.com/openband/bandwire/cmd/bandwire/cmd"
)

func main() {
	cmd.Execute()
}
