package main

import (
	"github.com/kolod/lpcvtcksum/internal/cmd"
)

func main() {
	cmd.Execute()
}
