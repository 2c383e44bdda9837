package main

import "prae/cmd"

func main() {
	cmd.Execute()
}
