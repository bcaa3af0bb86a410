package main

import "github.com/jsphweid/chordline/cmd"

func main() {
	cmd.Execute()
}
