package client

import (
	"fmt"

	"github.com/MKhiriev/freight-calculator/internal/tui"
	"github.com/MKhiriev/freight-calculator/internal/validators"
	"github.com/spf13/cobra"
)

// errInvalidPostalCodes makes the command exit non-zero without printing
// anything beyond the per-code report.
type errInvalidPostalCodes int

func (e errInvalidPostalCodes) Error() string {
	return fmt.Sprintf("%d invalid postal code(s)", int(e))
}

func (a *App) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <postal_code>...",
		Short: "Check that postal codes (CEP) have eight digits",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			invalid := 0
			for _, postalCode := range args {
				valid := validators.IsValidPostalCode(postalCode)
				if !valid {
					invalid++
				}
				fmt.Fprint(a.out, tui.RenderPostalCode(postalCode, valid))
			}

			if invalid > 0 {
				return errInvalidPostalCodes(invalid)
			}
			return nil
		},
	}
}
