package main

import "github.com/zjrosen/bizperiod/cmd"

func main() {
	cmd.Execute()
}
