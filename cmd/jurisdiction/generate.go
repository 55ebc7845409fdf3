package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mycoria/jurisdiction"
	"github.com/mycoria/jurisdiction/compiler"
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateData, "data", "data/country-region.json", "data source to compile")
	generateCmd.Flags().StringVar(&generateLock, "lock", "data/index.yaml", "index lock to read and update")
	generateCmd.Flags().StringVar(&generateOut, "out", ".", "module root to write the generated sources to")
	generateCmd.Flags().BoolVar(&generateCheck, "check", false, "only check whether the generated sources are up to date")
}

var (
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Compile the data source into lookup tables",
		Args:  cobra.NoArgs,
		RunE:  generate,
	}

	generateData  string
	generateLock  string
	generateOut   string
	generateCheck bool
)

// errOutdated is returned by generate --check.
var errOutdated = errors.New("generated tables are out of date, run go generate")

func generate(cmd *cobra.Command, args []string) error {
	setupLogging(slog.LevelInfo)

	src, digest, err := compiler.LoadSource(generateData)
	if err != nil {
		return err
	}
	lock, err := compiler.LoadIndexLock(generateLock)
	if err != nil {
		return err
	}

	if generateCheck {
		if !lock.Current(digest) || jurisdiction.DataDigest != digest {
			return errOutdated
		}
		slog.Info("generated tables are up to date", "digest", digest)
		return nil
	}

	err = compiler.Generate(src, digest, lock, compiler.Target{
		LockFile: generateLock,
		OutDir:   generateOut,
	})
	if err != nil {
		var verr *compiler.ValidationError
		if errors.As(err, &verr) {
			slog.Error("data source is invalid", "check", verr.Check.String(), "record", verr.Record, "code", verr.Code)
		}
		return fmt.Errorf("failed to generate: %w", err)
	}

	slog.Info(
		"generated lookup tables",
		"countries", len(src.Countries),
		"regions", len(src.Regions),
		"sub-regions", len(src.SubRegions),
		"intermediate-regions", len(src.IntermediateRegions),
		"digest", digest,
	)
	return nil
}
