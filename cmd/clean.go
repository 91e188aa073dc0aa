package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ms-henglu/logtree/internal/log"
	"github.com/ms-henglu/logtree/internal/sources"
	"github.com/spf13/cobra"
)

func NewCleanCmd() *cobra.Command {
	var keepCache bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Removes vendored trees and the download cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			log.Section("Removing vendored trees...")
			workspaceDir := filepath.Join(cwd, sources.WorkspaceDir)
			if _, err := os.Stat(workspaceDir); !os.IsNotExist(err) {
				if err := os.RemoveAll(workspaceDir); err != nil {
					return fmt.Errorf("failed to remove %s directory: %w", sources.WorkspaceDir, err)
				}
				log.Item(sources.WorkspaceDir + " directory")
			}

			if !keepCache {
				log.Section("Removing download cache...")
				removed, err := sources.CleanGlobalCache()
				if err != nil {
					return err
				}
				if removed {
					log.Item("global cache")
				}
			}

			log.Success("Clean complete!")
			return nil
		},
	}

	cmd.Flags().BoolVar(&keepCache, "keep-cache", false, "Keep the global download cache")
	return cmd
}
