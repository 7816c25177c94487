package main

import "panel-router/cmd"

func main() {
	cmd.Execute()
}
