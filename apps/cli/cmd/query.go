package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/sheetfn/packages/cell"
	"github.com/abdul-hamid-achik/sheetfn/packages/db"
	"github.com/spf13/cobra"
)

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run SQL against a database written with --db",
	Long: `Run a SQL query against a database that import, flatten or call stored
a table in with --db, and print the result like any other table. Every
stored column is TEXT; NULL prints as an empty cell.

Examples:
  sheetfn import https://dummyjson.com/users --key users --db sqlite://out.db --table users
  sheetfn query --db sqlite://out.db "SELECT firstName, age FROM users WHERE age > '40'"`,
	Args: usageArgs(cobra.ExactArgs(1)),
	RunE: queryCommand,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func queryCommand(cmd *cobra.Command, args []string) error {
	if dbFlag == "" {
		return usageError{fmt.Errorf("query needs --db")}
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	client, err := db.NewClient(dbFlag)
	if err != nil {
		return configError{err}
	}
	defer client.Close()

	result, err := client.Query(args[0])
	if err != nil {
		return err
	}

	// The database is the source here, not a destination.
	s.dbURL = ""
	s.header = true
	return s.emit(cmd.Context(), cell.Grid(result.Table()))
}
