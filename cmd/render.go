package cmd

import (
	"fmt"
	"os"

	"github.com/ms-henglu/logtree/internal/log"
	"github.com/ms-henglu/logtree/internal/manifest"
	"github.com/ms-henglu/logtree/internal/sources"
	"github.com/ms-henglu/logtree/tree"
	"github.com/spf13/cobra"
)

func NewRenderCmd() *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "render [files...]",
		Short: "Renders trees declared in *.tree.hcl manifests",
		Long: `Render the trees declared in tree manifests.

Without arguments, every *.tree.hcl file in the current directory is loaded in
alphabetical order. With --source, manifests are loaded from a local directory
or fetched from any go-getter source (git, http, s3, gcs) into the global cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args

			if len(paths) == 0 {
				dir, err := os.Getwd()
				if err != nil {
					return err
				}
				if source != "" {
					dir, err = sources.Resolve(cmd.Context(), source)
					if err != nil {
						return err
					}
				}

				paths, err = manifest.DiscoverManifests(dir)
				if err != nil {
					return err
				}
				if len(paths) == 0 {
					log.Hint(fmt.Sprintf("No tree manifests (%s) found in %s.\nYou can preview the available styles by running 'logtree demo --all'.", manifest.FilePattern, dir))
					return nil
				}
			} else if source != "" {
				return fmt.Errorf("--source cannot be combined with explicit manifest files")
			}

			log.Debug("Reading %d tree manifests...", len(paths))
			m, err := manifest.ParseMultiple(paths)
			if err != nil {
				return err
			}

			sink := tree.WriterSink{W: cmd.OutOrStdout()}
			total := 0
			for _, root := range m.Build() {
				lines, err := root.DrawTo(sink)
				total += lines
				if err != nil {
					return fmt.Errorf("failed to write tree: %w", err)
				}
			}
			log.Debug("Rendered %d trees, %d lines", len(m.Trees), total)
			return nil
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "Directory or go-getter source to load *.tree.hcl manifests from")
	return cmd
}
