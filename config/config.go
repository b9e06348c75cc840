package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/savorybites/restaurant-backend/models"
)

// Defaults used when the environment does not override them.
const (
	DefaultRestaurantName  = "Savory Bites"
	DefaultAddress         = "123 Food Street"
	DefaultTaxRate         = 8.5
	DefaultMaxOrdersPerDay = 100
)

// Config holds the restaurant-wide settings. It is constructed once in main
// and passed explicitly to everything that prices orders; there is no
// package-level instance. Reads and writes are safe from any request
// goroutine.
type Config struct {
	mu              sync.RWMutex
	restaurantName  string
	address         string
	taxRate         float64
	maxOrdersPerDay int
}

// New returns a Config with the default settings.
func New() *Config {
	return &Config{
		restaurantName:  DefaultRestaurantName,
		address:         DefaultAddress,
		taxRate:         DefaultTaxRate,
		maxOrdersPerDay: DefaultMaxOrdersPerDay,
	}
}

// Load builds a Config from the environment, falling back to the defaults.
// Call godotenv.Load first if a .env file should be honored.
func Load() *Config {
	cfg := New()
	cfg.restaurantName = getEnv("RESTAURANT_NAME", DefaultRestaurantName)
	cfg.address = getEnv("RESTAURANT_ADDRESS", DefaultAddress)
	if v, err := strconv.ParseFloat(os.Getenv("TAX_RATE"), 64); err == nil {
		cfg.taxRate = v
	}
	if v, err := strconv.Atoi(os.Getenv("MAX_ORDERS_PER_DAY")); err == nil {
		cfg.maxOrdersPerDay = v
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) RestaurantName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.restaurantName
}

func (c *Config) Address() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.address
}

func (c *Config) TaxRate() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.taxRate
}

func (c *Config) MaxOrdersPerDay() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxOrdersPerDay
}

func (c *Config) SetRestaurantName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restaurantName = name
}

func (c *Config) SetAddress(address string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.address = address
}

// SetTaxRate rejects rates outside [0,100]; the previous rate is kept on
// error.
func (c *Config) SetTaxRate(rate float64) error {
	if rate < 0 || rate > 100 {
		return models.InvalidArgumentf("Tax rate must be between 0 and 100")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.taxRate = rate
	return nil
}

func (c *Config) SetMaxOrdersPerDay(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.maxOrdersPerDay = n
}
