package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	C "brokerbase/config"
	"brokerbase/model/model"

	log "github.com/sirupsen/logrus"
)

// migratedModels lists every table the schema owns, in dependency order.
var migratedModels = []interface{}{
	&model.Project{},
	&model.MasterProperty{},
	&model.Transaction{},
	&model.ImportBatch{},
	&model.Contact{},
	&model.ContactProperty{},
	&model.Company{},
	&model.CrmDeal{},
	&model.DealStageHistory{},
	&model.DealContact{},
	&model.ProspectList{},
	&model.ProspectListItem{},
	&model.ListingSite{},
	&model.ListingLead{},
	&model.Budget{},
	&model.Expense{},
	&model.Vendor{},
	&model.PropertyPhoto{},
	&model.RentPayment{},
	&model.CapitalProject{},
}

func upCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Create or update all tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := C.LoadFromEnv("migrate")
			if err != nil {
				return err
			}
			if err := C.InitWithoutRedis(config); err != nil {
				return err
			}

			db := C.GetServices().Db
			defer db.Close()

			if err := db.AutoMigrate(migratedModels...).Error; err != nil {
				return err
			}

			log.Info("Schema migration completed.")
			return nil
		},
	}
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Brokerbase schema migration tool",
	}
	rootCmd.AddCommand(upCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
