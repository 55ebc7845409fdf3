package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/mycoria/jurisdiction"
	"github.com/mycoria/jurisdiction/api"
	"github.com/mycoria/jurisdiction/region"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listYAML, "yaml", false, "output full information as yaml")
}

var (
	listCmd = &cobra.Command{
		Use:   "list [region]",
		Short: "List all jurisdictions, or those of a region",
		Args:  cobra.MaximumNArgs(1),
		RunE:  list,
	}

	listYAML bool
)

func list(cmd *cobra.Command, args []string) error {
	all := jurisdiction.All()
	if len(args) == 1 {
		var err error
		all, err = regionJurisdictions(args[0])
		if err != nil {
			return err
		}
	}

	if listYAML {
		infos := make([]api.Info, 0, len(all))
		for _, j := range all {
			infos = append(infos, api.Describe(j))
		}
		data, err := yaml.Marshal(infos)
		if err != nil {
			return fmt.Errorf("failed to marshal: %w", err)
		}
		fmt.Print(string(data)) // CLI output.
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, j := range all {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%03d\t%s\n", j.Alpha2(), j.Alpha3(), j.CountryCode(), j.Name())
	}
	return tw.Flush()
}

func regionJurisdictions(name string) ([]jurisdiction.Jurisdiction, error) {
	if r, err := region.Parse(name); err == nil {
		return r.Jurisdictions(), nil
	}
	if s, err := region.ParseSubRegion(name); err == nil {
		return s.Jurisdictions(), nil
	}
	ir, err := region.ParseIntermediateRegion(name)
	if err != nil {
		return nil, err
	}
	return ir.Jurisdictions(), nil
}
