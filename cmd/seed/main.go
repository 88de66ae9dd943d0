package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"cadastro/internal/registrants"
	"cadastro/internal/shared/config"
	"cadastro/internal/shared/database"
)

func main() {
	fmt.Println("Seeding cadastro database...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repo := registrants.NewRepository(db.GetPostgreSQL())
	ctx := context.Background()

	samples := []registrants.Registrant{
		{FirstName: "Alice", LastName: "Johnson", Email: "alice@teste.com", Phone: "1122334455", Password: "Password@123"},
		{FirstName: "João", LastName: "Silva", Email: "joao.silva@teste.com", Phone: "11987654321", Password: "Senha#2024"},
		{FirstName: "Maria", LastName: "Oliveira", Email: "maria@teste.com", Password: "Forte!Mente1"},
	}

	created := 0
	for i := range samples {
		if err := repo.Create(ctx, &samples[i]); err != nil {
			if errors.Is(err, registrants.ErrDuplicateEmail) {
				fmt.Printf("skipping %s: already registered\n", samples[i].Email)
				continue
			}
			log.Fatalf("Failed to seed %s: %v", samples[i].Email, err)
		}
		created++
		fmt.Printf("created registrant %d (%s)\n", samples[i].ID, samples[i].Email)
	}

	fmt.Printf("Done. %d registrants created.\n", created)
}
