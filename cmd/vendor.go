package cmd

import (
	"fmt"
	"os"

	"github.com/ms-henglu/logtree/internal/log"
	"github.com/ms-henglu/logtree/internal/manifest"
	"github.com/ms-henglu/logtree/internal/sources"
	"github.com/spf13/cobra"
)

func NewVendorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vendor <source>",
		Short: "Copies tree manifests from a source into .logtree/trees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]

			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			log.Section("Vendoring " + source + "...")
			dst, hit, err := sources.Vendor(cmd.Context(), source, cwd)
			if err != nil {
				return err
			}
			if hit {
				log.Item("[Cache Hit]")
			}

			paths, err := manifest.DiscoverManifests(dst)
			if err != nil {
				return err
			}
			for _, p := range paths {
				log.Item(p)
			}
			if len(paths) == 0 {
				log.Warn(fmt.Sprintf("No %s files found in %s", manifest.FilePattern, source))
			}

			log.Success(fmt.Sprintf("Vendored to %s", dst))
			log.Hint(fmt.Sprintf("Next Step: Run 'logtree render --source %s' to draw them.", dst))
			return nil
		},
	}

	return cmd
}
