package main

import "github.com/jhoicas/Recepcion-api/internal/cli"

func main() {
	cli.Execute()
}
