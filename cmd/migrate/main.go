package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run main.go [drop|up|seed]")
		os.Exit(1)
	}

	command := os.Args[1]

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	switch command {
	case "drop":
		if err := dropTables(ctx, conn); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		fmt.Println("All tables dropped successfully")

	case "up":
		if err := createTables(ctx, conn); err != nil {
			log.Fatalf("Failed to create tables: %v", err)
		}
		fmt.Println("All tables created successfully")

	case "seed":
		if err := seedData(ctx, conn); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
		fmt.Println("Lookup data seeded successfully")

	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func dropTables(ctx context.Context, conn *pgx.Conn) error {
	statements := []string{
		`DROP TABLE IF EXISTS activity_tags`,
		`DROP TABLE IF EXISTS activity_categories`,
		`DROP TABLE IF EXISTS activities`,
		`DROP TABLE IF EXISTS tags`,
		`DROP TABLE IF EXISTS categories`,
		`DROP TABLE IF EXISTS pitch_statuses`,
		`DROP TABLE IF EXISTS scheduling_statuses`,
	}
	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func createTables(ctx context.Context, conn *pgx.Conn) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS categories (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			display_name TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS tags (
			id BIGSERIAL PRIMARY KEY,
			key TEXT NOT NULL,
			display_name TEXT,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS pitch_statuses (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS scheduling_statuses (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS activities (
			id BIGSERIAL PRIMARY KEY,
			display_code TEXT NOT NULL,
			title TEXT,
			summary TEXT,
			significance TEXT,
			scheduling_considerations TEXT,
			pitch_comments TEXT,
			is_issue BOOLEAN,
			oic_related BOOLEAN,
			is_confidential BOOLEAN,
			is_all_day BOOLEAN,
			not_for_look_ahead BOOLEAN,
			planning_report BOOLEAN,
			thirty_sixty_ninety_report BOOLEAN,
			is_active BOOLEAN DEFAULT true,
			start_date DATE,
			start_time TEXT,
			end_date DATE,
			end_time TEXT,
			venue_address JSONB,
			activity_status_id BIGINT,
			pitch_status_id BIGINT REFERENCES pitch_statuses(id),
			scheduling_status_id BIGINT REFERENCES scheduling_statuses(id),
			contact_ministry_id BIGINT,
			city_id BIGINT,
			look_ahead_status TEXT CHECK (look_ahead_status IN ('none', 'new', 'changed')),
			look_ahead_section TEXT CHECK (look_ahead_section IN ('events', 'issues', 'news', 'awareness')),
			calendar_visibility TEXT CHECK (calendar_visibility IN ('visible', 'partial', 'hidden')),
			owner_id BIGINT,
			comms_lead_id BIGINT,
			event_lead_id BIGINT,
			event_lead_name TEXT,
			videographer_id BIGINT,
			graphics_id BIGINT,
			created_by_id BIGINT,
			last_updated_by_id BIGINT,
			created_datetime TIMESTAMPTZ NOT NULL DEFAULT now(),
			last_updated_datetime TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS activity_categories (
			id BIGSERIAL PRIMARY KEY,
			activity_id BIGINT NOT NULL REFERENCES activities(id),
			category_id BIGINT NOT NULL REFERENCES categories(id),
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE TABLE IF NOT EXISTS activity_tags (
			id BIGSERIAL PRIMARY KEY,
			activity_id BIGINT NOT NULL REFERENCES activities(id),
			tag_id BIGINT NOT NULL REFERENCES tags(id),
			is_active BOOLEAN NOT NULL DEFAULT true
		)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_start_date ON activities(start_date)`,
		`CREATE INDEX IF NOT EXISTS idx_activities_is_active ON activities(is_active)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_categories_activity ON activity_categories(activity_id)`,
		`CREATE INDEX IF NOT EXISTS idx_activity_tags_activity ON activity_tags(activity_id)`,
	}
	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func seedData(ctx context.Context, conn *pgx.Conn) error {
	statements := []string{
		`INSERT INTO pitch_statuses (name) VALUES
			('Not Pitched'), ('Pitched'), ('Approved'), ('Declined')
		ON CONFLICT DO NOTHING`,
		`INSERT INTO scheduling_statuses (name) VALUES
			('Unscheduled'), ('Tentative'), ('Confirmed'), ('Completed'), ('Cancelled')
		ON CONFLICT DO NOTHING`,
		`INSERT INTO categories (name, display_name) VALUES
			('event', 'Event'),
			('news-release', 'News Release'),
			('issue', 'Issue'),
			('awareness-day', 'Awareness Day')
		ON CONFLICT DO NOTHING`,
		`INSERT INTO tags (key, display_name) VALUES
			('minister', 'Minister'),
			('premier', 'Premier'),
			('regional', 'Regional'),
			('virtual', NULL)
		ON CONFLICT DO NOTHING`,
	}
	for _, stmt := range statements {
		if _, err := conn.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
