// cmd/seed/main.go
//
// Seeds the jewelryItems catalog with a starter collection.
// Usage:
//
//	FIRESTORE_PROJECT_ID=... go run ./cmd/seed
//
// Existing docs with the same name are skipped, so reruns are safe.
package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	catalogdom "bijoux/internal/domain/catalog"
	shared "bijoux/internal/platform/di/shared"
)

var starterItems = []catalogdom.Item{
	{Name: "Aurelia Chain Necklace", Price: 120.50, Category: catalogdom.CategoryNecklace,
		Description: "18k gold-plated chain with a teardrop pendant."},
	{Name: "Luna Pearl Necklace", Price: 89.00, Category: catalogdom.CategoryNecklace,
		Description: "Freshwater pearl on a sterling silver chain."},
	{Name: "Seren Twist Bangle", Price: 64.00, Category: catalogdom.CategoryBangle,
		Description: "Hand-twisted brass bangle, nickel free."},
	{Name: "Isla Cuff Bangle", Price: 72.25, Category: catalogdom.CategoryBangle,
		Description: "Open cuff with hammered finish."},
	{Name: "Nova Stud Earrings", Price: 38.00, Category: catalogdom.CategoryEarring,
		Description: "Cubic zirconia studs, surgical steel posts."},
	{Name: "Mira Drop Earrings", Price: 54.75, Category: catalogdom.CategoryEarring,
		Description: "Matte gold drops with garnet accents."},
	{Name: "Vela Solitaire Ring", Price: 110.00, Category: catalogdom.CategoryRing,
		Description: "Solitaire ring with a lab-grown white sapphire."},
	{Name: "Ember Stacking Ring", Price: 42.50, Category: catalogdom.CategoryRing,
		Description: "Slim stacking band in rose gold vermeil."},
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	infra, err := shared.NewInfra(ctx)
	if err != nil {
		log.Fatalf("[seed] infra init failed: %v", err)
	}
	defer func() { _ = infra.Close() }()

	col := infra.Firestore.Collection("jewelryItems")

	// existing names (skip duplicates on rerun)
	existing := map[string]bool{}
	it := col.Documents(ctx)
	defer it.Stop()
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			log.Fatalf("[seed] listing catalog failed: %v", err)
		}
		if name, ok := snap.Data()["name"].(string); ok {
			existing[name] = true
		}
	}

	created := 0
	for _, item := range starterItems {
		if existing[item.Name] {
			log.Printf("[seed] skip (exists): %s", item.Name)
			continue
		}
		item.ID = uuid.NewString()
		if err := item.Validate(); err != nil {
			log.Fatalf("[seed] invalid starter item %q: %v", item.Name, err)
		}
		if _, err := col.Doc(item.ID).Set(ctx, map[string]any{
			"id":          item.ID,
			"name":        item.Name,
			"price":       item.Price,
			"imageUri":    item.ImageURI,
			"description": item.Description,
			"category":    string(item.Category),
		}); err != nil {
			log.Fatalf("[seed] create failed for %q: %v", item.Name, err)
		}
		created++
		log.Printf("[seed] created: %s (%s)", item.Name, item.ID)
	}

	log.Printf("[seed] done: %d created, %d skipped", created, len(starterItems)-created)
}
