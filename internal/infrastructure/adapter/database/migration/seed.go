package migration

import (
	"context"
	"errors"

	"github.com/querykicks/querykicks/internal/domain/entity"
	domainErr "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/persistence"
	"golang.org/x/crypto/bcrypt"
)

type seedUser struct {
	name     string
	email    string
	password string
	balance  string
	role     string
}

type seedProduct struct {
	name        string
	description string
	price       string
	stock       int
	imageURL    string
}

// Default accounts created on an empty database. The admin password
// must be changed after first login in any real deployment.
var defaultUsers = []seedUser{
	{name: "Admin", email: "admin@querykicks.local", password: "changeme123", balance: "0.00", role: entity.RoleAdmin},
	{name: "Marcus", email: "marcus@example.com", password: "sneakerhead", balance: "500.00", role: entity.RoleUser},
	{name: "Jasmine", email: "jasmine@example.com", password: "sneakerhead", balance: "350.00", role: entity.RoleUser},
}

// Starter catalog so a fresh install has something on the shelf
var defaultProducts = []seedProduct{
	{name: "Air Jordan 1 Retro High", description: "The classic that started it all. Chicago colorway.", price: "179.99", stock: 12, imageURL: "/static/img/aj1-retro-high.png"},
	{name: "Nike Dunk Low Panda", description: "Black and white staple for any rotation.", price: "114.99", stock: 25, imageURL: "/static/img/dunk-low-panda.png"},
	{name: "Adidas Samba OG", description: "Timeless indoor soccer silhouette in white leather.", price: "99.99", stock: 30, imageURL: "/static/img/samba-og.png"},
	{name: "New Balance 550", description: "Retro basketball look with a modern fit.", price: "119.99", stock: 18, imageURL: "/static/img/nb-550.png"},
	{name: "Asics Gel-Kayano 14", description: "Y2K runner with layered mesh and metallic accents.", price: "159.99", stock: 10, imageURL: "/static/img/gel-kayano-14.png"},
	{name: "Converse Chuck 70 High", description: "Premium canvas take on the all-time classic.", price: "89.99", stock: 40, imageURL: "/static/img/chuck-70-high.png"},
}

// Seeder populates a fresh database with default users and products
type Seeder struct {
	userRepo     persistence.UserRepository
	productRepo  persistence.ProductRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	bcryptCost   int
}

// NewSeeder creates a new Seeder
func NewSeeder(
	userRepo persistence.UserRepository,
	productRepo persistence.ProductRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	bcryptCost int,
) *Seeder {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Seeder{
		userRepo:     userRepo,
		productRepo:  productRepo,
		timeProvider: timeProvider,
		logger:       logger,
		bcryptCost:   bcryptCost,
	}
}

// SeedAll creates the default users and starter catalog if missing.
// Existing rows are left untouched, so it is safe to run at every boot.
func (s *Seeder) SeedAll(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}
	return s.seedProducts(ctx)
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	for _, su := range defaultUsers {
		_, err := s.userRepo.GetByEmail(ctx, su.email)
		if err == nil {
			continue
		}
		if !errors.Is(err, domainErr.ErrUserNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), s.bcryptCost)
		if err != nil {
			return err
		}

		user, err := entity.NewUser(su.name, su.email, string(hash), su.balance, s.timeProvider)
		if err != nil {
			return err
		}
		user.Role = su.role

		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}

		s.logger.Info("Seeded default user", map[string]any{
			"email": su.email,
			"role":  su.role,
		})
	}

	return nil
}

func (s *Seeder) seedProducts(ctx context.Context) error {
	count, err := s.productRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, sp := range defaultProducts {
		product, err := entity.NewProduct(sp.name, sp.description, sp.price, sp.stock, sp.imageURL, s.timeProvider)
		if err != nil {
			return err
		}
		if err := s.productRepo.Create(ctx, product); err != nil {
			return err
		}
	}

	s.logger.Info("Seeded starter catalog", map[string]any{
		"products": len(defaultProducts),
	})

	return nil
}
