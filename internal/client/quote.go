package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/freight-calculator/internal/normalizer"
	"github.com/MKhiriev/freight-calculator/internal/service"
	"github.com/MKhiriev/freight-calculator/internal/tui"
	"github.com/MKhiriev/freight-calculator/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// routeFlags are shared by every quote subcommand.
type routeFlags struct {
	from string
	to   string

	receipt bool
	ownHand bool

	asJSON bool
}

func (f *routeFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.from, "from", "", "origin postal code (CEP)")
	fs.StringVar(&f.to, "to", "", "destination postal code (CEP)")
	fs.BoolVar(&f.receipt, "receipt", false, "request proof of delivery")
	fs.BoolVar(&f.ownHand, "own-hand", false, "request delivery to the addressee only")
	fs.BoolVar(&f.asJSON, "json", false, "print the API response body instead of a table")
}

func (f *routeFlags) options() models.ShippingOptions {
	options := models.ShippingOptions{}
	if f.receipt {
		options["receipt"] = true
	}
	if f.ownHand {
		options["own_hand"] = true
	}
	if len(options) == 0 {
		return nil
	}
	return options
}

func (a *App) quoteCommand() *cobra.Command {
	quote := &cobra.Command{
		Use:   "quote",
		Short: "Calculate shipping quotes",
	}

	quote.AddCommand(a.quoteSimpleCommand())
	quote.AddCommand(a.quoteShopifyCommand())
	quote.AddCommand(a.quotePackageCommand())
	quote.AddCommand(a.quoteProductsCommand())

	return quote
}

func (a *App) quoteSimpleCommand() *cobra.Command {
	var route routeFlags
	var weight, width, height, length, value float64
	var quantity int

	cmd := &cobra.Command{
		Use:   "simple",
		Short: "Quote a single product; only the weight is required",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			weightNumber := models.Number(weight)
			product := models.SimpleProduct{
				Weight:   &weightNumber,
				Width:    changedNumber(flags, "width", width),
				Height:   changedNumber(flags, "height", height),
				Length:   changedNumber(flags, "length", length),
				Value:    changedNumber(flags, "value", value),
				Quantity: changedNumber(flags, "quantity", float64(quantity)),
			}

			return a.runQuote(cmd, route, service.CalculationRequest{
				Input: normalizer.SimpleInput{Product: product},
			})
		},
	}

	route.register(cmd.Flags())
	cmd.Flags().Float64Var(&weight, "weight", 0, "weight in kilograms")
	cmd.Flags().Float64Var(&width, "width", normalizer.DefaultWidth, "width in centimetres")
	cmd.Flags().Float64Var(&height, "height", normalizer.DefaultHeight, "height in centimetres")
	cmd.Flags().Float64Var(&length, "length", normalizer.DefaultLength, "length in centimetres")
	cmd.Flags().Float64Var(&value, "value", 0, "declared value")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "number of units")
	markRequired(cmd, "from", "to", "weight")

	return cmd
}

func (a *App) quoteShopifyCommand() *cobra.Command {
	var route routeFlags
	var productJSON string

	cmd := &cobra.Command{
		Use:   "shopify",
		Short: "Quote a Shopify product object; weights above the gram threshold are read as grams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var product models.ShopifyProduct
			if err := json.Unmarshal([]byte(productJSON), &product); err != nil {
				return fmt.Errorf("error decoding --product: %w", err)
			}

			return a.runQuote(cmd, route, service.CalculationRequest{
				Input: normalizer.ShopifyInput{Product: product},
			})
		},
	}

	route.register(cmd.Flags())
	cmd.Flags().StringVar(&productJSON, "product", "", `Shopify product JSON, e.g. '{"id":123,"price":"50.00","weight":300}'`)
	markRequired(cmd, "from", "to", "product")

	return cmd
}

func (a *App) quotePackageCommand() *cobra.Command {
	var route routeFlags
	var pkg models.Package

	cmd := &cobra.Command{
		Use:   "package",
		Short: "Quote a single pre-packed volume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runQuote(cmd, route, service.CalculationRequest{Package: &pkg})
		},
	}

	route.register(cmd.Flags())
	cmd.Flags().Float64Var(&pkg.Weight, "weight", 0, "weight in kilograms")
	cmd.Flags().Float64Var(&pkg.Width, "width", 0, "width in centimetres")
	cmd.Flags().Float64Var(&pkg.Height, "height", 0, "height in centimetres")
	cmd.Flags().Float64Var(&pkg.Length, "length", 0, "length in centimetres")
	cmd.Flags().Float64Var(&pkg.InsuranceValue, "insurance-value", 0, "declared value")
	markRequired(cmd, "from", "to", "weight", "width", "height", "length")

	return cmd
}

func (a *App) quoteProductsCommand() *cobra.Command {
	var route routeFlags
	var file string

	cmd := &cobra.Command{
		Use:   "products",
		Short: "Quote a JSON array of products read from a file (- for stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			products, err := readProducts(cmd, file)
			if err != nil {
				return err
			}

			return a.runQuote(cmd, route, service.CalculationRequest{
				Input: normalizer.GenericInput{Products: products},
			})
		},
	}

	route.register(cmd.Flags())
	cmd.Flags().StringVarP(&file, "file", "f", "-", "products JSON file")
	markRequired(cmd, "from", "to")

	return cmd
}

func (a *App) runQuote(cmd *cobra.Command, route routeFlags, req service.CalculationRequest) error {
	services, err := a.services()
	if err != nil {
		return err
	}

	req.Origin = route.from
	req.Destination = route.to
	req.Options = route.options()

	a.logger.Debug().
		Str("from", req.Origin).
		Str("to", req.Destination).
		Msg("calculating quotes")

	result, err := services.ShippingService.Calculate(cmd.Context(), req)
	if err != nil {
		return err
	}

	if route.asJSON {
		encoder := json.NewEncoder(a.out)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")
		return encoder.Encode(models.QuoteResponse{Success: true, QuoteResult: result})
	}

	fmt.Fprint(a.out, tui.RenderQuotes(result))
	return nil
}

func readProducts(cmd *cobra.Command, file string) ([]models.Product, error) {
	in := cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("error opening products file: %w", err)
		}
		defer f.Close()
		in = f
	}

	var products []models.Product
	if err := json.NewDecoder(in).Decode(&products); err != nil {
		return nil, fmt.Errorf("error decoding products: %w", err)
	}
	return products, nil
}

// changedNumber returns v only when the flag was set, so unset dimensions
// take the normalizer defaults.
func changedNumber(flags *pflag.FlagSet, name string, v float64) *models.Number {
	if !flags.Changed(name) {
		return nil
	}
	n := models.Number(v)
	return &n
}

func markRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		_ = cmd.MarkFlagRequired(name)
	}
}
