package cmd

import "fmt"

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  `Show the weft CLI version and build time.`,
		Usage: "weft version",
		Run: func(args []string) error {
			fmt.Printf("weft version %s (built %s)\n", Version, BuildTime)
			return nil
		},
	})
}
