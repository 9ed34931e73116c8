package main

import (
	cmd "github.com/kontent-tools/kontaudit/cmd/kontaudit"
)

func main() {
	cmd.Execute()
}
