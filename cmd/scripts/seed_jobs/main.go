package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/joblane/joblane/internal/db"
	"github.com/joblane/joblane/internal/models"
	"github.com/joblane/joblane/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()

	mongoStore, err := db.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("connect mongo: %v", err)
	}
	defer mongoStore.Close(ctx)

	if err := mongoStore.EnsureIndexes(ctx); err != nil {
		log.Fatalf("ensure indexes: %v", err)
	}

	jobs := []models.Job{
		{
			Title:       "Senior Backend Engineer",
			Type:        "Full-Time",
			Description: "Own the services behind our listings and search.",
			Company: models.Company{
				Name:         "Northwind Labs",
				ContactEmail: "talent@northwindlabs.example",
				ContactPhone: "555-0101",
			},
			Location: "Remote",
			Salary:   145000,
		},
		{
			Title:       "Frontend Developer",
			Type:        "Full-Time",
			Description: "Build and polish the hiring dashboard SPA.",
			Company: models.Company{
				Name:         "Brightside",
				ContactEmail: "jobs@brightside.example",
				ContactPhone: "555-0102",
			},
			Location: "Berlin",
			Salary:   78000,
		},
		{
			Title:       "Support Engineer",
			Type:        "Part-Time",
			Description: "Help employers debug their postings and integrations.",
			Company: models.Company{
				Name:         "Helpdeck",
				ContactEmail: "people@helpdeck.example",
				ContactPhone: "555-0103",
			},
			Location: "Lisbon",
			Salary:   42000,
		},
	}

	store := db.NewJobStore(mongoStore)

	titles := make([]string, 0, len(jobs))
	for _, j := range jobs {
		titles = append(titles, j.Title)
	}

	if _, err := mongoStore.Jobs.DeleteMany(ctx, bson.M{"title": bson.M{"$in": titles}}); err != nil {
		log.Fatalf("delete existing jobs: %v", err)
	}

	for i := range jobs {
		if err := store.Insert(ctx, &jobs[i]); err != nil {
			log.Fatalf("insert job %q: %v", jobs[i].Title, err)
		}
	}

	log.Printf("seeded %d jobs", len(jobs))
}
