package main

import "dferna40/termfolio/cmd"

func main() {
	cmd.Execute()
}
