package main

import "yebox/cmd"

func main() {
	cmd.Execute()
}
