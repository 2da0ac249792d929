package initialize

import (
	"fmt"
	"net/http"
	"time"

	"github.com/MUCCHU/imf-gadgets-api/app/controllers"
	"github.com/MUCCHU/imf-gadgets-api/app/db"
	jwtutil "github.com/MUCCHU/imf-gadgets-api/app/jwt"
	"github.com/MUCCHU/imf-gadgets-api/app/middleware"
	"github.com/MUCCHU/imf-gadgets-api/app/models"
	"github.com/MUCCHU/imf-gadgets-api/app/repo"
	"github.com/MUCCHU/imf-gadgets-api/app/services"
	"github.com/MUCCHU/imf-gadgets-api/config"
	"github.com/MUCCHU/imf-gadgets-api/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg       *config.Config
	DB        *gorm.DB
	Router    http.Handler
	Auth      *controllers.AuthController
	Gadgets   *controllers.GadgetController
	Users     *services.UserService
	GadgetSvc *services.GadgetService
}

func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	gdb, err := db.Connect(db.Config{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Pass,
		DBName:   cfg.DB.Name,
		SSLMode:  cfg.DB.SSLMode,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	if err := gdb.AutoMigrate(&models.User{}, &models.Gadget{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	userRepo := repo.NewUserRepository(gdb)
	gadgetRepo := repo.NewGadgetRepository(gdb)
	userSvc := services.NewUserService(userRepo)
	gadgetSvc := services.NewGadgetService(gadgetRepo, nil)

	signer := &jwtutil.Signer{
		Secret: []byte(cfg.JWT.Secret),
		Issuer: cfg.JWT.Issuer,
		TTL:    time.Duration(cfg.JWT.ExpMin) * time.Minute,
	}
	authCtrl := controllers.NewAuthController(userSvc, signer)
	gadgetCtrl := controllers.NewGadgetController(gadgetSvc)
	mw := &middleware.Auth{Signer: signer}

	h := router.NewRouter(authCtrl, gadgetCtrl, mw)
	h = middleware.Logging(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Auth: authCtrl, Gadgets: gadgetCtrl, Users: userSvc, GadgetSvc: gadgetSvc}, nil
}
