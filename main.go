package main

import "spendlog/cmd"

func main() {
	cmd.Execute()
}
