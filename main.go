package main

import "github.com/msikit/msiscope/cmd"

func main() {
	cmd.Execute()
}
