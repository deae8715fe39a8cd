package main

import "github.com/cae-tools/astermat/cmd"

func main() {
	cmd.Execute()
}
