package main

import (
	"fmt"
	"os"

	"github.com/tiagobortoncello/assistente-rt/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erro: %v\n", err)
		os.Exit(1)
	}
}
