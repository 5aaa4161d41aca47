package main

import (
	"context"
	"os"
	"syscall"

	"dreamhouse/internal/cli"

	"github.com/charmbracelet/fang"
	_ "go.uber.org/automaxprocs"
)

var version = "dev"

func main() {
	root := cli.NewRootCmd()

	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		os.Exit(1)
	}
}
