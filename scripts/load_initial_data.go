package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"franchise-backend/internal/api/routes"
	"franchise-backend/internal/config"
	"franchise-backend/internal/database"
	"franchise-backend/internal/logger"
	"franchise-backend/internal/service"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Seed structures mirror the ownership tree
type ProductData struct {
	Name  string `yaml:"name"`
	Stock int    `yaml:"stock"`
}

type BranchData struct {
	Name     string        `yaml:"name"`
	Products []ProductData `yaml:"products,omitempty"`
}

type FranchiseData struct {
	Name     string       `yaml:"name"`
	Branches []BranchData `yaml:"branches,omitempty"`
}

type FranchisesFile struct {
	Franchises []FranchiseData `yaml:"franchises"`
}

// seedStats counts the records created by one run
type seedStats struct {
	Franchises int
	Branches   int
	Products   int
}

func main() {
	logger.Setup("info")
	logrus.SetOutput(os.Stdout)
	logrus.Info("Loading initial data from YAML files")

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	dataDir := "scripts/data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	franchises, err := loadFranchises(dataDir)
	if err != nil {
		logrus.Fatalf("Failed to read seed data: %v", err)
	}

	stats, err := seedFranchises(routes.NewServices(db), franchises)
	if err != nil {
		logrus.Fatalf("Failed to load data: %v", err)
	}

	logrus.WithFields(logrus.Fields{
		"franchises_created": stats.Franchises,
		"branches_created":   stats.Branches,
		"products_created":   stats.Products,
	}).Info("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	dsn := cfg.DatabaseURL
	if cfg.DatabaseDriver == database.DriverSQLite {
		dsn = database.SQLiteDSN(cfg.SQLitePath)
	}
	opts := &database.Options{
		Driver:   cfg.DatabaseDriver,
		LogLevel: gormlogger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			logrus.Warnf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

// loadFranchises reads every *.yaml file under dataDir whose name mentions franchises
func loadFranchises(dataDir string) ([]FranchiseData, error) {
	var all []FranchiseData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(d.Name(), ".yaml") && strings.Contains(d.Name(), "franchises") {
			var file FranchisesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			all = append(all, file.Franchises...)
		}
		return nil
	})

	return all, err
}

// seedFranchises creates whatever part of the tree is missing. Records are
// matched by name under their owner, so running it twice creates nothing new.
func seedFranchises(services *routes.Services, franchises []FranchiseData) (seedStats, error) {
	var stats seedStats

	existing, err := services.Franchises.GetAll()
	if err != nil {
		return stats, err
	}
	byName := make(map[string]service.FranchiseResponse, len(existing))
	for _, f := range existing {
		byName[f.Name] = f
	}

	for _, franchiseData := range franchises {
		franchise, ok := byName[franchiseData.Name]
		if !ok {
			created, err := services.Franchises.Create(&service.CreateFranchiseRequest{Name: franchiseData.Name})
			if err != nil {
				return stats, fmt.Errorf("failed to create franchise %s: %w", franchiseData.Name, err)
			}
			franchise = *created
			byName[franchise.Name] = franchise
			stats.Franchises++
		}

		for _, branchData := range franchiseData.Branches {
			if err := seedBranch(services, franchise, branchData, &stats); err != nil {
				return stats, err
			}
		}
	}

	return stats, nil
}

func seedBranch(services *routes.Services, franchise service.FranchiseResponse, branchData BranchData, stats *seedStats) error {
	var branch *service.BranchResponse
	for i := range franchise.Branches {
		if franchise.Branches[i].Name == branchData.Name {
			branch = &franchise.Branches[i]
			break
		}
	}
	if branch == nil {
		created, err := services.Branches.Create(&service.CreateBranchRequest{
			Name:        branchData.Name,
			FranchiseID: franchise.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to create branch %s in %s: %w", branchData.Name, franchise.Name, err)
		}
		branch = created
		stats.Branches++
	}

	present := make(map[string]bool, len(branch.Products))
	for _, p := range branch.Products {
		present[p.Name] = true
	}

	for _, productData := range branchData.Products {
		if present[productData.Name] {
			continue
		}
		stock := productData.Stock
		if _, err := services.Products.Create(&service.CreateProductRequest{
			Name:     productData.Name,
			Stock:    &stock,
			BranchID: branch.ID,
		}); err != nil {
			return fmt.Errorf("failed to create product %s in %s: %w", productData.Name, branch.Name, err)
		}
		present[productData.Name] = true
		stats.Products++
	}

	return nil
}
