package add

import (
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	archive "github.com/swg-tools/sginfo/pkg/archive/add"
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
		Use:   "add <sysinfo path>...",
		Short: "parse sysinfo dumps and store them in the archive",
		Example: heredoc.Doc(`
		$ sginfo archive add proxysg01.sysinfo
		$ sginfo archive add proxysg01.sysinfo proxysg02.sysinfo.gz
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := archive.Add(args, archive.WithDBType(options.dbtype.String()), archive.WithDBPath(options.dbpath), archive.WithDebug(options.debug)); err != nil {
				return errors.Wrap(err, "archive add")
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
