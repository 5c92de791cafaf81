package cmd

import (
	"net/url"

	"github.com/nekruzvatanshoev/carlot/pkg/carlot/config"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/listing"
	"github.com/nekruzvatanshoev/carlot/pkg/carlot/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var CatalogCmd = &cobra.Command{
	Use:   CatalogCmdName,
	Short: CatalogCmdShort,
	Long:  CatalogCmdLong,
	RunE:  catalogCmdFunc,
}

func init() {
	CatalogCmd.Flags().String(listing.ControlCategory, listing.Any, "category: all, suv, luxury, performance or sedan")
	CatalogCmd.Flags().String(listing.ControlPrice, listing.Any, "price bucket in millions: all, 0-2, 2-4 or 4+")
	CatalogCmd.Flags().String(listing.ControlYear, listing.Any, "year bucket: all, 2023-2024, 2020-2022 or 2017-2019")
	CatalogCmd.Flags().String("search", "", "case-insensitive search over name and engine")
}

func catalogCmdFunc(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	catalog, err := cfg.Catalog()
	if err != nil {
		return err
	}

	ctrl := listing.FormControls(url.Values{})
	for _, name := range []string{listing.ControlCategory, listing.ControlPrice, listing.ControlYear} {
		v, _ := cmd.Flags().GetString(name)
		ctrl.Set(name, v)
	}
	search, _ := cmd.Flags().GetString("search")
	ctrl.Set(listing.ControlSearch, search)

	surface := &render.TextSurface{}
	listing.NewEngine(catalog, surface, nil).Apply(ctrl)

	_, err = surface.WriteTo(cmd.OutOrStdout())
	return err
}
