package main

import "json-diff/cmd"

func main() {
	cmd.Execute()
}
