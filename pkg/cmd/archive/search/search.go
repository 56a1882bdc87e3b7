package search

import (
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	archiveTypes "github.com/swg-tools/sginfo/pkg/archive/common/types"
	archive "github.com/swg-tools/sginfo/pkg/archive/search"
	utilflag "github.com/swg-tools/sginfo/pkg/cmd/util/flag"
	utilos "github.com/swg-tools/sginfo/pkg/util/os"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "search in the report archive",
	}

	cmd.AddCommand(
		newSerialCmd(),
		newListCmd(),
		newMetadataCmd(),
	)

	return cmd
}

func newSerialCmd() *cobra.Command {
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
		Use:   "serial <serial number>...",
		Short: "search archived reports by appliance serial number",
		Example: heredoc.Doc(`
		$ sginfo archive search serial 4211000000
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := archive.Search(archiveTypes.SearchSerial, args, archive.WithDBType(options.dbtype.String()), archive.WithDBPath(options.dbpath), archive.WithDebug(options.debug)); err != nil {
				return errors.Wrap(err, "archive search")
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

func newListCmd() *cobra.Command {
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
		Use:   "list",
		Short: "list all archived reports",
		Example: heredoc.Doc(`
		$ sginfo archive search list
		`),
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := archive.Search(archiveTypes.SearchList, nil, archive.WithDBType(options.dbtype.String()), archive.WithDBPath(options.dbpath), archive.WithDebug(options.debug)); err != nil {
				return errors.Wrap(err, "archive search")
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

func newMetadataCmd() *cobra.Command {
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
		Use:   "metadata",
		Short: "show the archive metadata",
		Example: heredoc.Doc(`
		$ sginfo archive search metadata
		`),
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := archive.Search(archiveTypes.SearchMetadata, nil, archive.WithDBType(options.dbtype.String()), archive.WithDBPath(options.dbpath), archive.WithDebug(options.debug)); err != nil {
				return errors.Wrap(err, "archive search")
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
