package main

import "tempo/cmd"

func main() {
	cmd.Execute()
}
