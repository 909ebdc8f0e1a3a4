package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/curanova/curanova-site/internal/config"
	"github.com/curanova/curanova-site/internal/db"
)

var (
	seedSchemaPath string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with the HR admin account and launch jobs",
	Long: `Create the HR admin account (SEED_HR_EMAIL / SEED_HR_PASSWORD) and the
initial published job postings. Safe to run repeatedly: the admin account is
upserted and jobs are only created into an empty table.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVar(&seedSchemaPath, "schema", "", "Apply this schema file before seeding (e.g. sql/schema.sql)")
	rootCmd.AddCommand(seedCmd)
}

// launchJobs are the postings the careers page opens with.
var launchJobs = []db.Job{
	{
		Title:       "Senior Machine Learning Engineer",
		Department:  "Engineering",
		Location:    "Boston, MA (Hybrid)",
		Type:        "Full-time",
		Description: "Design and deploy clinical prediction models that run inside hospital workflows. You will own the lifecycle from research prototype to monitored production service.",
		Requirements: []string{
			"5+ years building production ML systems",
			"Experience with clinical or other regulated data",
			"Strong Python and SQL",
			"Familiarity with model monitoring and drift detection",
		},
		Benefits: []string{"Equity", "Full medical/dental/vision", "401(k) match"},
		Status:   db.JobPublished,
	},
	{
		Title:       "Clinical Data Engineer",
		Department:  "Engineering",
		Location:    "Remote (US)",
		Type:        "Full-time",
		Description: "Build the pipelines that turn messy EHR extracts into model-ready datasets. HL7/FHIR experience is a big plus.",
		Requirements: []string{
			"3+ years of data engineering",
			"PostgreSQL and workflow orchestration",
			"HL7 or FHIR exposure preferred",
		},
		Benefits: []string{"Remote-first", "Learning budget", "Home office stipend"},
		Status:   db.JobPublished,
	},
	{
		Title:       "Product Designer, Clinician Tools",
		Department:  "Design",
		Location:    "Boston, MA",
		Type:        "Full-time",
		Description: "Design interfaces clinicians actually want to use. You will shadow care teams, prototype fast, and measure outcomes, not clicks.",
		Requirements: []string{
			"4+ years of product design",
			"Shipped healthcare or other safety-critical software",
			"Strong prototyping portfolio",
		},
		Status: db.JobPublished,
	},
	{
		Title:       "Customer Success Manager, Health Systems",
		Department:  "Customer Success",
		Location:    "Remote (US)",
		Type:        "Full-time",
		Description: "Own a portfolio of hospital deployments from kickoff through renewal. You are the voice of the care team inside Curanova.",
		Requirements: []string{
			"Experience managing enterprise healthcare accounts",
			"Comfort with clinical stakeholders",
			"Willingness to travel up to 25%",
		},
		Status: db.JobPublished,
	},
}

func runSeed(cmd *cobra.Command, _ []string) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	ctx := cmd.Context()
	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if seedSchemaPath != "" {
		schema, err := os.ReadFile(seedSchemaPath)
		if err != nil {
			return fmt.Errorf("failed to read schema file: %w", err)
		}
		if err := database.ApplySchema(ctx, string(schema)); err != nil {
			return err
		}
		log.Printf("Applied schema from %s", seedSchemaPath)
	}

	passwords, err := config.NewPasswordConfig()
	if err != nil {
		return fmt.Errorf("failed to create password config: %w", err)
	}

	email := os.Getenv("SEED_HR_EMAIL")
	if email == "" {
		email = "hr@curanova.ai"
	}
	password := os.Getenv("SEED_HR_PASSWORD")
	if password == "" {
		return fmt.Errorf("SEED_HR_PASSWORD environment variable is required")
	}

	hash, err := passwords.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	adminID, err := database.UpsertHRAdmin(ctx, email, hash, "HR Admin")
	if err != nil {
		return fmt.Errorf("failed to upsert HR admin: %w", err)
	}
	log.Printf("HR admin ready: %s (%s)", email, adminID)

	return seedJobs(ctx, database)
}

func seedJobs(ctx context.Context, database *db.DB) error {
	existing, err := database.ListJobs(ctx, false)
	if err != nil {
		return fmt.Errorf("failed to list jobs: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("Jobs table already has %d rows, skipping job seed", len(existing))
		return nil
	}

	for i := range launchJobs {
		job := launchJobs[i]
		id, err := database.CreateJob(ctx, &job)
		if err != nil {
			return fmt.Errorf("failed to create job %q: %w", job.Title, err)
		}
		log.Printf("Created job %q (%s)", job.Title, id)
	}
	return nil
}
