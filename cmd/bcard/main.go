package main

import "github.com/nfrund/bcard/cmd/bcard/cmd"

func main() {
	cmd.Execute()
}
