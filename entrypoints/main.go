package main

import (
	"github.com/inkwell-blog/inkwell/cmd"
)

func main() {
	cmd.Execute()
}
