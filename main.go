package main

import "nathanbeddoewebdev/huepick/cmd"

func main() {
	cmd.Execute()
}
