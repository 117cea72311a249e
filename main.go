package main

import "github.com/theirongolddev/spendlens/cmd"

func main() {
	cmd.Execute()
}
