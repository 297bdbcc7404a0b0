package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "lendcore/internal/adapter/http"
	"lendcore/internal/adapter/middleware"
	"lendcore/internal/adapter/repository/mysql"
	"lendcore/internal/config"
	accountDomain "lendcore/internal/domain/account"
	consumerDomain "lendcore/internal/domain/consumer"
	loanappDomain "lendcore/internal/domain/loanapp"
	"lendcore/internal/event"
	"lendcore/internal/infrastructure/cache"
	"lendcore/internal/infrastructure/db"
	accountUC "lendcore/internal/usecase/account"
	loanappUC "lendcore/internal/usecase/loanapp"
	"lendcore/internal/usecase/onboarding"
	"lendcore/pkg/cipher"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(
		&consumerDomain.Consumer{},
		&accountDomain.PrincipalAccount{},
		&accountDomain.VendorLinkedAccount{},
		&loanappDomain.LoanApplication{},
		&loanappDomain.LoanApplicationDecision{},
	); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	fieldCipher, err := cipher.New(cfg.FieldKey)
	if err != nil {
		log.Fatalf("field cipher: %v", err)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)
	bus := event.NewBus(logger)

	consumers := mysql.NewConsumerRepository(gdb)
	principals := mysql.NewPrincipalAccountRepository(gdb)
	vendors := mysql.NewVendorAccountRepository(gdb)
	apps := mysql.NewLoanApplicationRepository(gdb)
	decisions := mysql.NewDecisionRepository(gdb)
	unit := mysql.NewGormUoW(gdb)

	onboardUC := onboarding.NewUsecase(consumers, fieldCipher, bus)
	accUC := accountUC.NewUsecase(principals, vendors)
	loanUC := loanappUC.NewUsecase(apps, decisions, unit, bus)

	// account provisioning rides the onboarding event
	accountUC.RegisterProvisioners(bus, accUC, cfg.DefaultVendor, logger)

	ch := httpadp.NewConsumerHandler(onboardUC)
	ah := httpadp.NewAccountHandler(accUC)
	lh := httpadp.NewLoanHandler(loanUC)
	hh := httpadp.NewHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	// routes
	e.GET("/health", hh.Health)

	e.POST("/consumers", ch.Onboard, idemp)
	e.GET("/consumers/:consumer_id", ch.Get)
	e.PATCH("/consumers/:consumer_id", ch.UpdateProfile, idemp)
	e.POST("/consumers/:consumer_id/archive", ch.Archive, idemp)

	e.POST("/consumers/:consumer_id/principal-account", ah.EnsurePrincipal, idemp)
	e.GET("/consumers/:consumer_id/principal-account", ah.GetPrincipal)
	e.POST("/consumers/:consumer_id/vendor-accounts", ah.LinkVendor, idemp)
	e.GET("/consumers/:consumer_id/vendor-accounts", ah.ListVendors)
	e.PATCH("/consumers/:consumer_id/vendor-accounts/:vendor_id", ah.UpdateVendorStatus, idemp)

	e.POST("/loan-applications", lh.Submit, idemp)
	e.GET("/loan-applications/:application_id", lh.Get)
	e.POST("/loan-applications/:application_id/cancel", lh.Cancel, idemp)
	e.POST("/loan-applications/:application_id/decisions", lh.Decide, idemp)
	e.GET("/loan-applications/:application_id/decisions", lh.ListDecisions)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
