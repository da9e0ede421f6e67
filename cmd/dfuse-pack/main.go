package main

import "github.com/moffa90/go-dfuse/cmd/dfuse-pack/cmd"

func main() {
	cmd.Execute()
}
