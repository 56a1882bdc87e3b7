package pull

import (
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	archive "github.com/swg-tools/sginfo/pkg/archive/pull"
	utilos "github.com/swg-tools/sginfo/pkg/util/os"
)

func NewCmd() *cobra.Command {
	options := struct {
		dbpath     string
		debug      bool
		noProgress bool
	}{
		dbpath:     filepath.Join(utilos.UserCacheDir(), "archive.db"),
		debug:      false,
		noProgress: false,
	}

	cmd := &cobra.Command{
		Use:   "pull (<repository>)",
		Short: "pull a prebuilt fleet archive from an oci registry",
		Example: heredoc.Doc(`
		$ sginfo archive pull
		$ sginfo archive pull ghcr.io/swg-tools/sginfo-archive:latest
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			opts := []archive.Option{
				archive.WithDBPath(options.dbpath),
				archive.WithDebug(options.debug),
				archive.WithNoProgress(options.noProgress),
			}
			if len(args) == 1 {
				opts = append(opts, archive.WithRepository(args[0]))
			}
			if err := archive.Pull(opts...); err != nil {
				return errors.Wrap(err, "archive pull")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&options.dbpath, "dbpath", "", options.dbpath, "archive db path")
	cmd.Flags().BoolVarP(&options.debug, "debug", "d", options.debug, "debug mode")
	cmd.Flags().BoolVarP(&options.noProgress, "no-progress", "", options.noProgress, "suppress the progress bar")

	return cmd
}
