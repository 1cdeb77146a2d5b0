package main

import "inkrypt/cmd/inkrypt/cmd"

func main() {
	cmd.Execute()
}
