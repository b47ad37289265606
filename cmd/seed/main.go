package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tutormatch/internal/config"
	"tutormatch/internal/database"
	"tutormatch/internal/domain"
	jwtsvc "tutormatch/internal/pkg/jwt"
	"tutormatch/internal/repository"
)

// Seeds a handful of tutors with profiles and open slots, plus a student,
// and prints a bearer token per user so the API can be exercised without a
// separate identity service.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	profiles := repository.NewTutorProfileRepository(db)
	slots := repository.NewSlotRepository(db)
	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	type tutorSeed struct {
		name     string
		bio      string
		rate     float64
		subjects []string
		years    int
		location string
	}
	tutorSeeds := []tutorSeed{
		{"Alex Kim", "Databases and algorithms tutor", 30, []string{"CIS4301", "COP3530"}, 4, "Gainesville"},
		{"Priya Patel", "Calculus and statistics", 25, []string{"MAC2312", "STA4241"}, 6, "Orlando"},
		{"Diego Lopez", "NLP and software engineering", 35, []string{"CAP4641", "CEN3031"}, 3, "Miami"},
	}

	for _, ts := range tutorSeeds {
		u, err := seedUser(ctx, users, domain.RoleTutor, ts.name)
		if err != nil {
			log.Fatalf("failed to seed tutor %s: %v", ts.name, err)
		}

		profile := &domain.TutorProfile{
			UserID:          u.ID,
			Bio:             ts.bio,
			HourlyRate:      ts.rate,
			Subjects:        ts.subjects,
			YearsExperience: ts.years,
			Location:        ts.location,
			OnlineOnly:      true,
		}
		if err := profiles.Create(ctx, profile); err != nil {
			log.Fatalf("failed to seed profile for %s: %v", ts.name, err)
		}

		// A week of weekday afternoon slots per tutor.
		day := time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1)
		for i := 0; i < 7; i++ {
			d := day.AddDate(0, 0, i)
			if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
				continue
			}
			start := time.Date(d.Year(), d.Month(), d.Day(), 15, 0, 0, 0, time.UTC)
			s := &domain.Slot{TutorID: u.ID, Start: start, End: start.Add(time.Hour)}
			if err := slots.Create(ctx, s); err != nil {
				log.Fatalf("failed to seed slot for %s: %v", ts.name, err)
			}
		}

		printToken(j, u)
	}

	student, err := seedUser(ctx, users, domain.RoleStudent, "Sam Rivera")
	if err != nil {
		log.Fatalf("failed to seed student: %v", err)
	}
	printToken(j, student)
}

func seedUser(ctx context.Context, users *repository.UserRepository, role domain.Role, name string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{
		Role:         role,
		Email:        fmt.Sprintf("%s-%s@seed.tutormatch.dev", role, uuid.NewString()[:8]),
		PasswordHash: string(hash),
		Name:         name,
	}
	if err := users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func printToken(j *jwtsvc.Service, u *domain.User) {
	token, err := j.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		log.Fatalf("failed to generate token for %s: %v", u.Email, err)
	}
	fmt.Printf("%-8s %-4d %-24s %s\n", u.Role, u.ID, u.Name, token)
}
