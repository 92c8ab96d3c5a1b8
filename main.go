package main

import "github.com/douhashi/ghlabel/cmd"

func main() {
	cmd.Execute()
}
