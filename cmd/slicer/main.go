package main

import "github.com/arl/slicer/cmd/slicer/cmd"

func main() {
	cmd.Execute()
}
