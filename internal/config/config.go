package config

import "os"

// Config holds the env-driven settings. Defaults reproduce the classic
// working-directory file layout.
type Config struct {
	DataDir          string
	VehiclesFile     string
	CustomersFile    string
	RentalsFile      string
	TransactionsFile string
	LogLevel         string
}

func Load() Config {
	return Config{
		DataDir:          getenv("RENTAL_DATA_DIR", "."),
		VehiclesFile:     getenv("RENTAL_VEHICLES_FILE", "vehicles.txt"),
		CustomersFile:    getenv("RENTAL_CUSTOMERS_FILE", "customers.txt"),
		RentalsFile:      getenv("RENTAL_RENTED_FILE", "rentedVehicles.txt"),
		TransactionsFile: getenv("RENTAL_TRANSACTIONS_FILE", "transActions.txt"),
		LogLevel:         getenv("LOG_LEVEL", "warn"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
