package main

import "github.com/reox/basicshapes/cmd"

func main() {
	cmd.Execute()
}
