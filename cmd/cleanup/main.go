package main

import (
	"flag"
	"log"
	"time"

	"github.com/dj1alilou/windyluxury/internal/config"
	"github.com/dj1alilou/windyluxury/internal/filestore"
	"github.com/dj1alilou/windyluxury/internal/model"
	"github.com/dj1alilou/windyluxury/internal/repository"
	"github.com/dj1alilou/windyluxury/internal/service"
	"github.com/dj1alilou/windyluxury/pkg/database"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Applies the order retention policy from the command line, for cron use.
// The API exposes the same operation at DELETE /api/admin/cleanup.
func main() {
	dryRun := flag.Bool("dry-run", false, "report what would be deleted without deleting")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	var orderRepo repository.OrderRepository
	var productRepo repository.ProductRepository
	if cfg.StorageDriver == config.DriverFile {
		store, err := filestore.New(cfg.DataDir)
		if err != nil {
			log.Fatal(err)
		}
		orderRepo = store.Orders()
		productRepo = store.Products()
	} else {
		db := database.ConnectDB(cfg.DatabaseURL)
		orderRepo = repository.NewOrderRepo(db)
		productRepo = repository.NewProductRepo(db)
	}

	if *dryRun {
		orders, err := orderRepo.FindAll("")
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("%d orders on record, retention would run against them", len(orders))
		return
	}

	orders := service.NewOrderService(orderRepo, productRepo, zeroPricer{}, nil)
	deleted, err := orders.PruneOrders(time.Now())
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Deleted %d old orders", deleted)
}

// zeroPricer satisfies the pricing dependency; pruning never prices.
type zeroPricer struct{}

func (zeroPricer) GetPrice(string, model.DeliveryType) decimal.Decimal {
	return decimal.Zero
}
