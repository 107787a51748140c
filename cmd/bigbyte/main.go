package main

import "github.com/bigbyte/bigbyte/cmd/bigbyte/cmd"

func main() {
	cmd.Execute()
}
