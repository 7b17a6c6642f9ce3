package main

import "github.com/advisorkit/relay/cmd"

func main() {
	cmd.Execute()
}
