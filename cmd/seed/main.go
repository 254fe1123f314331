package main

import (
	"context"
	"flag"
	"log"
	"time"

	"dj-backend/internal/auth"
	"dj-backend/internal/config"
	"dj-backend/internal/db"
	"dj-backend/internal/models"
	"dj-backend/internal/repositories"
	"dj-backend/internal/timeutil"
)

// Seeds the first admin account and the starter package catalog.
// Safe to re-run: existing rows are left alone.
func main() {
	email := flag.String("email", "admin@vetridj.com", "Admin email")
	password := flag.String("password", "", "Admin password (required)")
	name := flag.String("name", "Admin", "Admin display name")
	flag.Parse()

	if *password == "" {
		log.Fatal("Usage: seed -password <password> [-email <email>] [-name <name>]")
	}

	cfg := config.Load()
	pool := db.Connect(cfg)
	defer pool.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	userRepo := repositories.NewUserRepository(pool)
	packageRepo := repositories.NewPackageRepository(pool)

	if _, err := userRepo.GetByEmail(ctx, *email); err == nil {
		log.Printf("Admin %s already exists, skipping", *email)
	} else {
		hash, err := auth.HashPassword(*password)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		admin := &models.User{
			Name:         *name,
			Email:        *email,
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			JoinedDate:   timeutil.Now(),
			IsActive:     true,
		}
		if err := userRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Created admin %s (id %d)", admin.Email, admin.ID)
	}

	existing, err := packageRepo.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list packages: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("Packages already seeded (%d found), done", len(existing))
		return
	}

	packages := []*models.EventPackage{
		{
			Name:     "Basic",
			Price:    15000,
			Features: []string{"DJ setup for 4 hours", "Basic sound system", "LED party lights"},
		},
		{
			Name:      "Premium",
			Price:     35000,
			Features:  []string{"DJ setup for 8 hours", "Pro sound system", "Moving head lights", "Smoke machine", "MC announcements"},
			IsPopular: true,
		},
		{
			Name:     "Grand",
			Price:    60000,
			Features: []string{"Full day coverage", "Line array sound system", "Full stage lighting rig", "LED video wall", "Cold pyro entry", "Dedicated crew of 5"},
		},
	}
	for _, p := range packages {
		if err := packageRepo.Create(ctx, p); err != nil {
			log.Fatalf("Failed to create package %s: %v", p.Name, err)
		}
		log.Printf("Created package %s (id %d)", p.Name, p.ID)
	}
}
