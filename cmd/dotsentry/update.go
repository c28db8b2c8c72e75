package dotsentry

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update dotsentry to the latest release",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := selfUpdate(); err != nil {
				return fmt.Errorf("self-update failed: %w", err)
			}
			fmt.Println("dotsentry is up to date")
			return nil
		},
	}
	rootCmd.AddCommand(cmd)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the dotsentry version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println("dotsentry", version)
		},
	}
	rootCmd.AddCommand(versionCmd)
}
