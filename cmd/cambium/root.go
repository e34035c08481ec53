package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cambium",
	Short: "Cambium is an action-pipeline execution core",
	Long:  `Cambium wraps units of business logic behind a uniform execute/handle contract and chains them into transactional pipelines. This CLI ships the supporting tooling.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
