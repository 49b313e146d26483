package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

// VersionCmd prints the tool version
func VersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}
}
