package main

import "github.com/jsairdrop/pangocheck/cmd"

func main() {
	cmd.Execute()
}
