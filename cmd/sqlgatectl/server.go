package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"sqlgate/pkg/audit"
	"sqlgate/pkg/authn"
	"sqlgate/pkg/config"
	"sqlgate/pkg/db"
	"sqlgate/pkg/gate"
	"sqlgate/pkg/report"
	"sqlgate/pkg/server"
	"sqlgate/pkg/server/endpoints"
	gormstore "sqlgate/pkg/server/store/gorm"
	"sqlgate/pkg/token"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the SQL gateway server",
	Long: `Run the SQL gateway server.

The server requires SQLGATE_PARAMETER_DATABASE_URL,
SQLGATE_TRANSACTION_DATABASE_URL and SQLGATE_JWT_SECRET, either from the
environment or from the config file.

By default, parameter database migrations are run on startup. Use
--no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		settings, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if host, _ := cmd.Flags().GetString("bind-address"); host != "" {
			settings.BindAddress = host
		}
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			settings.Port = port
		}

		if err := settings.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running parameter database migrations...")
			if err := runMigrations(settings.ParameterDatabaseURL); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		parameterDB, err := db.Connect(settings.ParameterDatabaseURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to parameter DB:", err)
			os.Exit(1)
		}
		transactionDB, err := db.Connect(settings.TransactionDatabaseURL)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to transaction DB:", err)
			os.Exit(1)
		}

		issuer := token.NewIssuer(settings.JWTSecret, settings.JWTAlgorithm, settings.TokenTTL())
		parameters := gormstore.NewParameterStore(parameterDB)
		users := gormstore.NewUserStore(parameterDB)
		execution := gormstore.NewExecutionStore(transactionDB)

		s := server.NewServer(
			*settings,
			gate.New(parameters, issuer),
			authn.NewService(users, issuer),
			execution,
			report.NewGenerator(execution, settings.ReportTemplateDir, settings.ReportOutputDir),
			audit.NewLogger(),
		)

		endpoints.RegisterAll(s)

		log.Printf("Running server at http://%s:%s...\n", settings.BindAddress, settings.Port)
		log.Fatal(s.Start())
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port (overrides config)")
	serverCmd.Flags().StringP("bind-address", "b", "", "server bind address (overrides config)")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
