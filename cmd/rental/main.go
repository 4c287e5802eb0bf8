package main

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/subediaakash/car-renting-system/internal/cli"
	"github.com/subediaakash/car-renting-system/internal/config"
	"github.com/subediaakash/car-renting-system/internal/repository"
	"github.com/subediaakash/car-renting-system/internal/service"
	"github.com/subediaakash/car-renting-system/internal/store"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	st := store.New(store.Paths{
		Vehicles:     filepath.Join(cfg.DataDir, cfg.VehiclesFile),
		Customers:    filepath.Join(cfg.DataDir, cfg.CustomersFile),
		Rentals:      filepath.Join(cfg.DataDir, cfg.RentalsFile),
		Transactions: filepath.Join(cfg.DataDir, cfg.TransactionsFile),
	})

	vehicleRepo := repository.NewVehicleRepository(st)
	customerRepo := repository.NewCustomerRepository(st)
	rentalRepo := repository.NewRentalRepository(st)
	transactionRepo := repository.NewTransactionRepository(st)

	catalog := service.NewCatalogService(vehicleRepo, rentalRepo)
	customers := service.NewCustomerService(customerRepo)
	rentals := service.NewRentalService(catalog, customers, vehicleRepo, rentalRepo, transactionRepo, log)
	reports := service.NewReportService(transactionRepo)

	menu := cli.NewMenu(os.Stdin, os.Stdout, catalog, customers, rentals, reports, log)
	if err := menu.Run(); err != nil {
		log.WithError(err).Error("session aborted")
		os.Exit(1)
	}
}
