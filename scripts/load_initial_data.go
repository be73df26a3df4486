package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"schoolpay-backend/internal/config"
	"schoolpay-backend/internal/database"
	"schoolpay-backend/internal/database/models"
	apperrors "schoolpay-backend/internal/errors"
	"schoolpay-backend/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/yaml.v3"
)

// Simple structures that directly match the YAML fixture files
type UserData struct {
	UserID    string `yaml:"user_id"`
	Email     string `yaml:"email"`
	Surname   string `yaml:"surname"`
	Firstname string `yaml:"firstname"`
	Phone     string `yaml:"phone"`
}

type OrganizationData struct {
	InstituteName string `yaml:"institute_name"`
	InstituteType string `yaml:"institute_type"`
	OtherType     string `yaml:"other_type,omitempty"`
	Email         string `yaml:"email"`
	Phone         string `yaml:"phone"`
	Address       string `yaml:"address"`
	OwnerUserID   string `yaml:"owner_user_id"`
	ReviewStatus  string `yaml:"review_status"`
}

type FeeData struct {
	Title            string  `yaml:"title"`
	Amount           float64 `yaml:"amount"`
	Description      string  `yaml:"description"`
	OrganizationName string  `yaml:"organization_name"`
}

// File structures
type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

type FeesFile struct {
	Fees []FeeData `yaml:"fees"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect with retry for dockerized Mongo startup
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for
// Mongo readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*mongo.Database, error) {
	opts := &database.Options{ConnectTimeout: 5 * time.Second}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(cfg.MongoURI, cfg.MongoDatabase, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *mongo.Database, dataDir string) error {
	ctx := context.Background()

	users, err := loadUsers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	fees, err := loadFees(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load fees: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	feeRepo := repository.NewFeeRepository(db)

	for _, data := range users {
		user := &models.User{
			UID:       data.UserID,
			Email:     data.Email,
			Surname:   data.Surname,
			Firstname: data.Firstname,
			Phone:     data.Phone,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if apperrors.IsAlreadyExists(err) {
				log.Printf("User %s already exists, skipping", data.UserID)
				continue
			}
			return fmt.Errorf("failed to insert user %s: %w", data.UserID, err)
		}
	}
	log.Printf("Loaded %d users", len(users))

	// Organization names map to generated ids so fees can reference them
	orgIDs := make(map[string]string, len(organizations))
	for _, data := range organizations {
		org := &models.Organization{
			InstituteName: data.InstituteName,
			InstituteType: data.InstituteType,
			OtherType:     data.OtherType,
			Email:         data.Email,
			Phone:         data.Phone,
			Address:       data.Address,
			OwnerID:       data.OwnerUserID,
			ReviewStatus:  data.ReviewStatus,
		}
		if err := orgRepo.Create(ctx, org); err != nil {
			return fmt.Errorf("failed to insert organization %s: %w", data.InstituteName, err)
		}
		orgIDs[data.InstituteName] = org.ID

		if data.OwnerUserID != "" {
			if err := userRepo.SetOrganization(ctx, data.OwnerUserID, org.ID, "true"); err != nil {
				log.Printf("Could not link owner %s to organization %s: %v", data.OwnerUserID, data.InstituteName, err)
			}
		}
	}
	log.Printf("Loaded %d organizations", len(organizations))

	for _, data := range fees {
		orgID, ok := orgIDs[data.OrganizationName]
		if !ok {
			return fmt.Errorf("fee %q references unknown organization %q", data.Title, data.OrganizationName)
		}
		fee := &models.Fee{
			Title:       data.Title,
			Amount:      data.Amount,
			Description: data.Description,
			OrgID:       orgID,
		}
		if err := feeRepo.Create(ctx, fee); err != nil {
			return fmt.Errorf("failed to insert fee %s: %w", data.Title, err)
		}
	}
	log.Printf("Loaded %d fees", len(fees))

	return nil
}

func loadUsers(dataDir string) ([]UserData, error) {
	var file UsersFile
	if err := readYAMLFile(filepath.Join(dataDir, "users.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Users, nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var file OrganizationsFile
	if err := readYAMLFile(filepath.Join(dataDir, "organizations.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Organizations, nil
}

func loadFees(dataDir string) ([]FeeData, error) {
	var file FeesFile
	if err := readYAMLFile(filepath.Join(dataDir, "fees.yaml"), &file); err != nil {
		return nil, err
	}
	return file.Fees, nil
}

func readYAMLFile(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No fixture file at %s, skipping", path)
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
