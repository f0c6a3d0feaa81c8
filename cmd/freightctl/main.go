package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/freight-calculator/internal/client"
	"github.com/MKhiriev/freight-calculator/internal/tui"
)

var buildVersion string

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if buildVersion == "" {
		buildVersion = "N/A"
	}

	var app client.Client = client.NewApp(os.Stdout, os.Stderr, nil, buildVersion)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprint(os.Stderr, tui.RenderError(err))
		os.Exit(1)
	}
}
