package main

import "github.com/papapumpkin/cinemood/cmd"

func main() {
	cmd.Execute()
}
