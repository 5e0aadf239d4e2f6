// Package main provides the born-dispatch diagnostic CLI.
package main

import (
	"context"

	"github.com/spf13/cobra"
)

const version = "v0.0.1-dev"

func main() {
	cobra.CheckErr(newCLI().ExecuteContext(context.Background()))
}
