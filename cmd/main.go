package main

import (
	"github.com/cairn-ml/cairn/pkg/cmd"
)

func main() {
	cmd.Execute()
}
