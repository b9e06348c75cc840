package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/savorybites/restaurant-backend/config"
	"github.com/savorybites/restaurant-backend/models"
	"github.com/savorybites/restaurant-backend/router"
	"github.com/savorybites/restaurant-backend/services"
	"github.com/savorybites/restaurant-backend/utils"
)

func main() {
	// Load .env before reading any configuration
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()

	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := config.Load()
	utils.InfoLogger.Printf("Starting %s (%s), tax rate %.2f%%",
		cfg.RestaurantName(), cfg.Address(), cfg.TaxRate())

	catalog := services.NewMenuCatalog()
	seedMenu(catalog)

	orders := services.NewOrderManager()
	orders.AddObserver(services.NewNotificationService(utils.InfoLogger))

	cart := services.NewCartService()

	// House terminal; the processor is never wired into the order flow.
	processor := services.NewCreditCardPayment("4111111111111111", cfg.RestaurantName(), utils.InfoLogger)
	payments := services.NewPaymentService(processor)

	r := router.SetupRouter(router.Deps{
		Cfg:      cfg,
		Catalog:  catalog,
		Orders:   orders,
		Cart:     cart,
		Payments: payments,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.InfoLogger.Printf("Listening on port %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// seedMenu fills the starting catalog through the factory.
func seedMenu(catalog *services.MenuCatalog) {
	seed := []struct {
		itemType    string
		id          string
		name        string
		price       float64
		description string
	}{
		{"appetizer", "wings", "Buffalo Wings", 12.99, "Crispy chicken wings with buffalo sauce"},
		{"main", "steak", "Grilled Ribeye Steak", 28.99, "Perfectly grilled 12oz ribeye"},
		{"dessert", "cheese", "New York Cheesecake", 7.99, "Classic creamy cheesecake"},
		{"appetizer", "salad", "Caesar Salad", 9.99, "Fresh romaine with Caesar dressing"},
	}

	for _, s := range seed {
		item, err := models.CreateMenuItem(s.itemType, s.id, s.name, s.price, s.description)
		if err != nil {
			utils.ErrorLogger.Fatalf("seed menu: %v", err)
		}
		if err := catalog.Add(item); err != nil {
			utils.ErrorLogger.Fatalf("seed menu: %v", err)
		}
	}
}
