package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"graze/config"
	"graze/database"
	"graze/router"

	// Drafts
	draftCtrlImp "graze/pkg/draft/controllerImp"
	draftRepoImp "graze/pkg/draft/repositoryImp"
	draftSvcImp "graze/pkg/draft/serviceImp"

	// Entries
	entryCtrlImp "graze/pkg/entry/controllerImp"
	entryRepoImp "graze/pkg/entry/repositoryImp"
	entrySvcImp "graze/pkg/entry/serviceImp"

	// Boundaries
	featCtrlImp "graze/pkg/feature/controllerImp"
	featRepoImp "graze/pkg/feature/repositoryImp"
	featSvcImp "graze/pkg/feature/serviceImp"

	// Map
	mapCtrlImp "graze/pkg/mapview/controllerImp"

	// Health
	healthCtrlImp "graze/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Repos/Services/Controllers
	eRepo := entryRepoImp.New(db)
	eSvc := entrySvcImp.New(eRepo)
	eCtrl := entryCtrlImp.New(eSvc)

	fRepo := featRepoImp.New(db)
	fSvc := featSvcImp.New(fRepo)
	fCtrl := featCtrlImp.New(fSvc)

	mCtrl := mapCtrlImp.New(eSvc, fSvc)

	dRepo := draftRepoImp.New(db)
	dSvc := draftSvcImp.New(dRepo, eRepo)
	dCtrl := draftCtrlImp.New(dSvc)

	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 5) Router
	r := router.New(e, eCtrl, fCtrl, mCtrl, dCtrl, hCtrl)

	// 6) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
