package main

import (
	"github.com/natural-bodybuilder/macromix/pkg/cli"
)

func main() {
	cli.Execute()
}
