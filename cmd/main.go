package main

import (
	"context"
	"fmt"
	"os"

	"github.com/yungbote/person-api/internal/cli"
)

func main() {
	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "personapi: %v\n", err)
		os.Exit(1)
	}
}
