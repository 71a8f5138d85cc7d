package cmd

import (
	"fmt"

	"github.com/go-weft/weft/examples"
)

func init() {
	RegisterCommand(&Command{
		Name:  "list",
		Short: "List the example gallery",
		Long: `List every gallery example with its import path and description.

Run any example with "go run ./<path>" from the repository root.`,
		Usage: "weft list",
		Run:   runList,
	})
}

func runList(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("list takes no arguments")
	}
	for _, cat := range examples.Categories {
		fmt.Printf("%s:\n", cat)
		for _, e := range examples.Gallery[cat] {
			fmt.Printf("  %-30s %-18s %s\n", e.Path, e.Title, e.Description)
		}
		fmt.Println()
	}
	return nil
}
