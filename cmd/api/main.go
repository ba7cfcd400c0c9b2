// Alcaravan Health API
//
// REST API for the Alcaravan health portal: body-composition metrics,
// patient health profiles and professional agendas.
//
//	@title			Alcaravan Health API
//	@version		1.0
//	@description	Body-composition metrics, patient health profiles and professional agendas.
//
//	@BasePath	/v1
//
//	@tag.name			metrics
//	@tag.description	Stateless anthropometric calculations
//
//	@tag.name			profiles
//	@tag.description	Portal profiles
//
//	@tag.name			health-profiles
//	@tag.description	Patient measurements and derived metrics
//
//	@tag.name			appointments
//	@tag.description	Appointment booking
//
//	@tag.name			schedule
//	@tag.description	Professional day grid and live time marker
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "alcaravan",
		Short:         "Alcaravan health portal API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(metricsCmd())
	rootCmd.AddCommand(slotCmd())

	return rootCmd
}
