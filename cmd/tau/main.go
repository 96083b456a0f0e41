package main

import "tau/cmd/tau/cmd"

func main() {
	cmd.Execute()
}
