package main

import "diario/cmd/diario-cli/cmd"

func main() {
	cmd.Execute()
}
