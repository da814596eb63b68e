package main

import "github.com/sarchlab/sramgen/sramgen/cmd"

func main() {
	cmd.Execute()
}
