package main

import (
	"fmt"
	"os"

	"github.com/swg-tools/sginfo/pkg/cmd/root"
)

func main() {
	if err := root.NewCmdRoot().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to exec sginfo: %s\n", fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}
