package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/mycoria/jurisdiction"
	"github.com/mycoria/jurisdiction/api"
)

func init() {
	rootCmd.AddCommand(lookupCmd)
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <code or name>...",
	Short: "Look up jurisdictions by alpha-2, alpha-3 or numeric code, or by name",
	Args:  cobra.MinimumNArgs(1),
	RunE:  lookup,
}

func lookup(cmd *cobra.Command, args []string) error {
	infos := make([]api.Info, 0, len(args))
	for _, query := range args {
		j, err := resolve(query)
		if err != nil {
			return err
		}
		infos = append(infos, api.Describe(j))
	}

	data, err := yaml.Marshal(infos)
	if err != nil {
		return fmt.Errorf("failed to marshal: %w", err)
	}
	fmt.Print(string(data)) // CLI output.
	return nil
}

// resolve finds the jurisdiction matching any of its representations.
func resolve(query string) (jurisdiction.Jurisdiction, error) {
	if query != "" && strings.Trim(query, "0123456789") == "" {
		return jurisdiction.ParseNumeric(query)
	}
	if j, err := jurisdiction.Parse(query); err == nil {
		return j, nil
	}
	return jurisdiction.ParseName(query)
}
