package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/gin-pizza-orders/internal/database"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"github.com/franciscosanchezn/gin-pizza-orders/internal/services"
)

func main() {
	// Parse command line flags
	dbPath := flag.String("db", "pizza.sqlite", "SQLite database file")
	menu := flag.String("flavours", "Mozzarella:5,Pepperoni:8,Mushrooms:4,Basil:2", "Comma separated name:added_price pairs")
	size := flag.String("size", "", "Also create one pizza of this size (l, xl, xxl) with every flavour of the menu")
	flag.Parse()

	entries, err := parseMenu(*menu)
	if err != nil {
		log.Fatal("Invalid -flavours value: ", err)
	}

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: *dbPath})
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	flavourService := services.NewFlavourService(db)
	existing, err := flavourService.GetAllFlavours()
	if err != nil {
		log.Fatal("Failed to list flavours: ", err)
	}
	byName := make(map[string]models.Flavour, len(existing))
	for _, f := range existing {
		byName[f.Name] = f
	}

	var ids []uint
	for _, entry := range entries {
		if f, ok := byName[entry.name]; ok {
			fmt.Printf("Flavour %q already exists (ID: %d, added price: %d)\n", f.Name, f.ID, f.AddedPrice)
			ids = append(ids, f.ID)
			continue
		}
		name, price := entry.name, entry.price
		f, err := flavourService.CreateFlavour(models.FlavourCreateRequest{Name: &name, AddedPrice: &price})
		if err != nil {
			log.Fatalf("Failed to create flavour %q: %v", entry.name, err)
		}
		fmt.Printf("✓ Created flavour %q (ID: %d, added price: %d)\n", f.Name, f.ID, f.AddedPrice)
		ids = append(ids, f.ID)
	}

	if *size == "" {
		return
	}
	pizzaSize := models.PizzaSize(*size)
	pizza, err := services.NewPizzaService(db).CreatePizza(models.PizzaCreateRequest{Size: &pizzaSize, Flavours: ids})
	if err != nil {
		log.Fatal("Failed to create pizza: ", err)
	}
	fmt.Printf("✓ Created %s pizza (ID: %d) with %d flavours, price %d\n", pizza.Size, pizza.ID, len(pizza.Flavours), pizza.Price)
}

type menuEntry struct {
	name  string
	price uint
}

// parseMenu reads "name:price,name:price"
func parseMenu(raw string) ([]menuEntry, error) {
	var entries []menuEntry
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		name, price, found := strings.Cut(item, ":")
		if !found || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("entry %q is not name:price", item)
		}
		value, err := strconv.ParseUint(strings.TrimSpace(price), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", item, err)
		}
		entries = append(entries, menuEntry{name: strings.TrimSpace(name), price: uint(value)})
	}
	if len(entries) == 0 {
		return nil, errors.New("no flavours given")
	}
	return entries, nil
}
