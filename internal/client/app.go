package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/freight-calculator/internal/adapter"
	"github.com/MKhiriev/freight-calculator/internal/config"
	"github.com/MKhiriev/freight-calculator/internal/logger"
	"github.com/MKhiriev/freight-calculator/internal/service"
	"github.com/spf13/cobra"
)

const appName = "freightctl"

type App struct {
	out    io.Writer
	errOut io.Writer

	newServices ServicesFactory

	version string
	verbose bool
	logger  *logger.Logger
}

// NewApp builds freightctl. A nil newServices reads the configuration from
// the environment and talks to Melhor Envio.
func NewApp(out, errOut io.Writer, newServices ServicesFactory, version string) *App {
	if newServices == nil {
		newServices = servicesFromEnv
	}

	return &App{
		out:         out,
		errOut:      errOut,
		newServices: newServices,
		version:     version,
		logger:      logger.Nop(),
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Melhor Envio shipping quotes from the command line",
		Long:          `freightctl validates Brazilian postal codes and calculates Melhor Envio shipping quotes using the same rules as the freight calculator API.`,
		Version:       a.version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = logger.NewCLILogger(appName, a.verbose)
			cmd.SetContext(a.logger.WithContext(cmd.Context()))
		},
	}

	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(a.validateCommand())
	root.AddCommand(a.quoteCommand())

	return root
}

func (a *App) services() (*service.Services, error) {
	services, err := a.newServices(a.logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}
	return services, nil
}

func servicesFromEnv(logger *logger.Logger) (*service.Services, error) {
	cfg, err := config.GetEnvConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	quoteClient := adapter.NewMelhorEnvioClient(cfg.Provider, logger)

	return service.NewServices(quoteClient, *cfg, logger)
}
