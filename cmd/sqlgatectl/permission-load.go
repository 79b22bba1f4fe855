package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"sqlgate/pkg/config"
	"sqlgate/pkg/db"
	"sqlgate/pkg/model"
	gormstore "sqlgate/pkg/server/store/gorm"
)

// permissionFile is the YAML shape of a permission matrix file.
type permissionFile struct {
	DatabaseName string                    `yaml:"databasename"`
	Tables       map[string]permissionRule `yaml:"tables"`
}

// permissionRule lists the allowed verbs for one table. Absent verbs stay
// denied.
type permissionRule struct {
	Select   bool `yaml:"select"`
	Insert   bool `yaml:"insert"`
	Update   bool `yaml:"update"`
	Delete   bool `yaml:"delete"`
	Truncate bool `yaml:"truncate"`
	Drop     bool `yaml:"drop"`
	Alter    bool `yaml:"alter"`
	Token    bool `yaml:"token"`
}

func (r permissionRule) toModel(databaseName, table string) *model.Parameter {
	return &model.Parameter{
		DatabaseName: databaseName,
		Table:        table,
		Select:       yn(r.Select),
		Insert:       yn(r.Insert),
		Update:       yn(r.Update),
		Delete:       yn(r.Delete),
		Truncate:     yn(r.Truncate),
		Drop:         yn(r.Drop),
		Alter:        yn(r.Alter),
		Token:        yn(r.Token),
	}
}

func yn(allowed bool) model.Flag {
	if allowed {
		return model.FlagYes
	}
	return model.FlagNo
}

// permissionLoadCmd represents the permission load command
var permissionLoadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Load a permission matrix file",
	Long: `Load a YAML permission matrix file into the parameter database.

Each table entry lists the allowed verbs and whether a token is required.
Existing records for the same table are overwritten; verbs not listed are
denied.

Example file:

  databasename: demo
  tables:
    tb_orders:
      select: true
      insert: true
      token: true

Example:
  sqlgatectl permission load permissions.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		count, err := loadPermissionFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load permissions: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d permission record(s)\n", count)
	},
}

func init() {
	permissionCmd.AddCommand(permissionLoadCmd)
}

func loadPermissionFile(filename string) (int, error) {
	settings, err := config.Load()
	if err != nil {
		return 0, err
	}
	if settings.ParameterDatabaseURL == "" {
		return 0, fmt.Errorf("SQLGATE_PARAMETER_DATABASE_URL environment variable is required")
	}

	database, err := db.Connect(settings.ParameterDatabaseURL)
	if err != nil {
		return 0, err
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return 0, fmt.Errorf("failed to read permission file: %w", err)
	}

	var file permissionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("failed to parse permission file: %w", err)
	}

	parameters := gormstore.NewParameterStore(database)
	ctx := context.Background()

	count := 0
	for table, rule := range file.Tables {
		if err := parameters.Upsert(ctx, rule.toModel(file.DatabaseName, table)); err != nil {
			return count, fmt.Errorf("failed to upsert %s: %w", table, err)
		}
		count++
	}
	return count, nil
}
