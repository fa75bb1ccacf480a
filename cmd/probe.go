package cmd

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Checks the Strapi configuration and connectivity",
	Long: `probe performs the same check as GET /api/strapi-health and prints the
report as JSON. It exits non-zero when Strapi could not be reached.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newStrapiClient(cmd.Context())
		if err != nil {
			return err
		}

		report := client.Probe(cmd.Context(), settings.UseMock)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
		if !report.OK {
			return errors.New(report.Hint)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
