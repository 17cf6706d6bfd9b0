package main

import (
	"os"

	"github.com/msto63/sro/cmd/sro/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
