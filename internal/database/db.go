package database

import (
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"contract-flow/internal/config"
	"contract-flow/internal/models"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		slog.Info("connecting to database", "attempt", i, "max_attempts", maxAttempts)

		DB, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
		if err == nil {
			slog.Info("connected to database")
			break
		}

		slog.Warn("database connection failed", "error", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		slog.Error("giving up connecting to database", "attempts", maxAttempts, "error", err)
		os.Exit(1)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Department{},
		&models.Unit{},
		&models.Contract{},
		&models.WorkflowStep{},
		&models.Activity{},
	)
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	seedDefaultAdmin(cfg)
	seedDemoUsers()
}

// admin account comes from config only, never from the register endpoint
func seedDefaultAdmin(cfg *config.Config) {
	email := cfg.AdminEmail
	if email == "" {
		email = "admin@contract-flow.local"
	}
	password := cfg.AdminPassword
	if password == "" {
		password = "Admin123!"
	}

	var count int64
	if err := DB.Model(&models.UserRole{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		slog.Warn("failed to check for admin user", "error", err)
		return
	}
	if count > 0 {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Warn("failed to hash default admin password", "error", err)
		return
	}

	admin := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrator",
	}
	if err := DB.Create(&admin).Error; err != nil {
		slog.Warn("failed to create default admin", "error", err)
		return
	}
	if err := DB.Create(&models.UserRole{UserID: admin.ID, Role: models.RoleAdmin}).Error; err != nil {
		slog.Warn("failed to assign admin role", "error", err)
		return
	}

	slog.Info("created default admin user", "email", email)
}

// demo reviewer and approver accounts so the pipeline can be exercised
// right after a fresh deploy
func seedDemoUsers() {
	type seedUser struct {
		Email    string
		FullName string
		Password string
		Role     models.Role
	}

	users := []seedUser{
		{
			Email:    "reviewer@contract-flow.local",
			FullName: "Demo Reviewer",
			Password: "Reviewer123!",
			Role:     models.RoleReviewer,
		},
		{
			Email:    "approval@contract-flow.local",
			FullName: "Demo Approver",
			Password: "Approval123!",
			Role:     models.RoleApproval,
		},
	}

	for _, u := range users {
		var count int64
		if err := DB.Model(&models.User{}).
			Where("email = ?", u.Email).
			Count(&count).Error; err != nil {
			slog.Warn("failed to check seed user", "email", u.Email, "error", err)
			continue
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			slog.Warn("failed to hash seed password", "email", u.Email, "error", err)
			continue
		}

		user := models.User{
			Email:        u.Email,
			PasswordHash: string(hash),
			FullName:     u.FullName,
		}
		if err := DB.Create(&user).Error; err != nil {
			slog.Warn("failed to create seed user", "email", u.Email, "error", err)
			continue
		}
		if err := DB.Create(&models.UserRole{UserID: user.ID, Role: u.Role}).Error; err != nil {
			slog.Warn("failed to assign seed role", "email", u.Email, "error", err)
			continue
		}

		slog.Info("created seed user", "email", u.Email, "role", u.Role)
	}
}
