package init

import (
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	archive "github.com/swg-tools/sginfo/pkg/archive/init"
	utilflag "github.com/swg-tools/sginfo/pkg/cmd/util/flag"
	utilos "github.com/swg-tools/sginfo/pkg/util/os"
)

func NewCmd() *cobra.Command {
	options := struct {
		dbtype utilflag.DBType
		dbpath string
		debug  bool
	}{
		dbtype: utilflag.DBTypeBoltDB,
		dbpath: filepath.Join(utilos.UserCacheDir(), "archive.db"),
		debug:  false,
	}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "initialize the report archive",
		Example: heredoc.Doc(`
		$ sginfo archive init
		`),
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := archive.Init(archive.WithDBType(options.dbtype.String()), archive.WithDBPath(options.dbpath), archive.WithDebug(options.debug)); err != nil {
				return errors.Wrap(err, "archive init")
			}
			return nil
		},
	}

	cmd.Flags().VarP(&options.dbtype, "dbtype", "", "archive db type (default: boltdb, accepts: [boltdb, pebble, redis, sqlite3, mysql, postgres])")
	_ = cmd.RegisterFlagCompletionFunc("dbtype", utilflag.DBTypeCompletion)
	cmd.Flags().StringVarP(&options.dbpath, "dbpath", "", options.dbpath, "archive db path")
	cmd.Flags().BoolVarP(&options.debug, "debug", "d", options.debug, "debug mode")

	return cmd
}
