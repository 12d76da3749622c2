package main

import "github.com/OpenTraceLab/sexptree/cmd/sexptree/cmd"

func main() {
	cmd.Execute()
}
