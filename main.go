package main

import "github.com/structcalc/beamcheck/cmd"

func main() {
	cmd.Execute()
}
