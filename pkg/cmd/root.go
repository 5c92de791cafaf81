package cmd

import (
	"fmt"
	"os"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	RootCmdName  = "carlot"
	RootCmdShort = "Carlot Motors dealership website"
	RootCmdLong  = `carlot serves the Carlot Motors website: the car listing with its
category, price, year and search filters, car details, the contact form and
the FAQ.`

	ServeCmdName  = "serve"
	ServeCmdShort = "Run the HTTP server"
	ServeCmdLong  = `Run the HTTP server. Every flag can also be set through a CARLOT_
environment variable (CARLOT_ADDRESS, CARLOT_LOG_LEVEL, ...) or the config file.`

	CatalogCmdName  = "catalog"
	CatalogCmdShort = "Print the filtered catalog"
	CatalogCmdLong  = `Print the catalog filtered with the same selectors as the listing page.`
)

var cfgFile string

var RootCmd = &cobra.Command{
	Use:           RootCmdName,
	Short:         RootCmdShort,
	Long:          RootCmdLong,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {

	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	RootCmd.PersistentFlags().String(config.KeyCatalog, "", "YAML catalog file; the built-in stock is used when empty")
	RootCmd.PersistentFlags().String(config.KeyLogLevel, "info", "log level")
	RootCmd.PersistentFlags().String(config.KeyLogFormat, "console", "log format: console or json")
	viper.BindPFlags(RootCmd.PersistentFlags())

	RootCmd.AddCommand(ServeCmd)
	RootCmd.AddCommand(CatalogCmd)
}

func initConfig() {
	config.SetDefaults(viper.GetViper())
	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "read config %s: %v\n", cfgFile, err)
		os.Exit(-1)
	}
}
