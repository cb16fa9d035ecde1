package main

import (
	"github.com/mtarnawa/keyack/cmd"
)

func main() {
	cmd.Execute()
}
