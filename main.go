package main

import "github.com/tanq16/grabfile/cmd"

func main() {
	cmd.Execute()
}
