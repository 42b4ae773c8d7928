package app

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/phenrril/stylematch/internal/adapters/httpserver"
	"github.com/phenrril/stylematch/internal/adapters/repo/postgres"
	"github.com/phenrril/stylematch/internal/colormatch"
	"github.com/phenrril/stylematch/internal/config"
	"github.com/phenrril/stylematch/internal/domain"
	"github.com/phenrril/stylematch/internal/usecase"
)

type App struct {
	DB         *gorm.DB
	Config     config.Config
	ProductUC  *usecase.ProductUC
	ProfileUC  *usecase.ProfileUC
	WardrobeUC *usecase.WardrobeUC
	StyleUC    *usecase.StyleUC
}

func NewApp(db *gorm.DB, cfg config.Config) (*App, error) {
	prodRepo := postgres.NewProductRepo(db)
	profileRepo := postgres.NewProfileRepo(db)
	wardrobeRepo := postgres.NewWardrobeRepo(db)

	app := &App{DB: db, Config: cfg}
	app.ProductUC = &usecase.ProductUC{Products: prodRepo}
	app.ProfileUC = &usecase.ProfileUC{Profiles: profileRepo}
	app.WardrobeUC = &usecase.WardrobeUC{Wardrobe: wardrobeRepo, Products: prodRepo}
	app.StyleUC = &usecase.StyleUC{
		Products:     prodRepo,
		Profiles:     profileRepo,
		Wardrobe:     wardrobeRepo,
		Composer:     colormatch.NewComposer(nil),
		CatalogLimit: cfg.CatalogLimit,
		DefaultMax:   cfg.DefaultMaxOutfits,
	}
	return app, nil
}

func (a *App) HTTPHandler() http.Handler {
	return httpserver.New(a.ProductUC, a.ProfileUC, a.WardrobeUC, a.StyleUC)
}

func (a *App) MigrateAndSeed() error {
	if err := a.DB.AutoMigrate(&domain.Product{}, &domain.UserProfile{}, &domain.WardrobeItem{}); err != nil {
		return err
	}

	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_products_category_gender ON products(category, gender) WHERE active").Error
	_ = a.DB.Exec("CREATE INDEX IF NOT EXISTS idx_wardrobe_items_user_created ON wardrobe_items(user_id, created_at DESC)").Error

	if !a.Config.SeedCatalog {
		return nil
	}
	var count int64
	if err := a.DB.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	n, err := seedProducts(context.Background(), a.ProductUC)
	if err != nil {
		return err
	}
	log.Info().Int("productos", n).Msg("catálogo de ejemplo cargado")
	return nil
}
