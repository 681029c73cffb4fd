// Seed provisions the super-admin and a demo agent with a handful of
// published listings. Safe to run repeatedly: existing accounts are left
// untouched.
package main

import (
	"fmt"
	"log"

	"realty-server/internal/config"
	"realty-server/internal/domain/entities"
	"realty-server/internal/domain/repositories"
	"realty-server/internal/infrastructure/db/postgres"
)

func main() {
	cfg := config.Load()
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	accountRepo := postgres.NewAccountRepository(db)
	listingRepo := postgres.NewListingRepository(db)

	log.Println("starting database seed")

	if _, err := ensureAccount(accountRepo, "admin@realestate.com", "admin123", "Admin User", entities.RoleSuperAdmin); err != nil {
		log.Fatal("failed to seed admin:", err)
	}

	agent, err := ensureAccount(accountRepo, "agent@demo.com", "password", "Demo Agent", entities.RoleAgent)
	if err != nil {
		log.Fatal("failed to seed agent:", err)
	}

	owned, err := listingRepo.CountByOwner(agent.Id)
	if err != nil {
		log.Fatal("failed to count agent listings:", err)
	}
	if owned == 0 {
		for i := 0; i < 5; i++ {
			listing := entities.NewListing(fmt.Sprintf("Cozy Villa %d", i+1), float64(300000+i*50000), agent.Id)
			listing.Description = "Lovely home in a quiet neighborhood."
			listing.Beds = 3
			listing.Baths = 2
			sqft := 1800 + i*100
			listing.Sqft = &sqft
			listing.Address = entities.Address{Street: "123 Main St", City: "Austin", State: "TX", Country: "US"}
			listing.Images = []string{"https://picsum.photos/seed/img1/800/600"}
			listing.Published = true

			validated, err := entities.NewValidatedListing(listing)
			if err != nil {
				log.Fatal("invalid seed listing:", err)
			}
			if _, err := listingRepo.Create(validated); err != nil {
				log.Fatal("failed to seed listing:", err)
			}
		}
		log.Println("seeded demo agent with 5 listings")
	}

	log.Println("database seed completed")
}

func ensureAccount(repo repositories.AccountRepository, email, password, name string, role entities.Role) (*entities.Account, error) {
	existing, err := repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		log.Printf("%s already exists", email)
		return existing, nil
	}

	account := entities.NewAccount(email, password, name, role)
	validated, err := entities.NewValidatedAccount(account)
	if err != nil {
		return nil, err
	}
	if err := validated.GetAccount().HashPassword(); err != nil {
		return nil, err
	}

	created, err := repo.Create(validated)
	if err != nil {
		return nil, err
	}
	log.Printf("created %s (%s)", email, role)
	return created, nil
}
