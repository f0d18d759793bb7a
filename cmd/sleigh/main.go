package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sleighlab/sleigh/internal/cli"
	"github.com/sleighlab/sleigh/pkg/flow"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		var inf *flow.InfeasibleError
		if errors.As(err, &inf) {
			os.Exit(2) // Definite infeasibility, distinct from generic failure
		}
		os.Exit(1)
	}
}
