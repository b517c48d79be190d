package main

import "github.com/skovlund/punch/cmd"

func main() {
	cmd.Execute()
}
