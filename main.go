package main

import (
	"log/slog"

	"fyne.io/fyne/v2/app"

	"github.com/arpancodez/hotelmgsys/auth"
	"github.com/arpancodez/hotelmgsys/config"
	"github.com/arpancodez/hotelmgsys/db"
	"github.com/arpancodez/hotelmgsys/logger"
	"github.com/arpancodez/hotelmgsys/ui"
)

func main() {
	log := logger.New("hotelmgsys", slog.LevelInfo)

	cfg := config.Load("settings.json")

	helper := db.NewHelper(cfg.Driver, cfg.DSN(), log)
	svc := auth.NewService(helper, log)
	svc.EnsureReady()
	defer svc.Close()

	hotelApp := app.New()
	hotelApp.Settings().SetTheme(ui.NewHotelTheme())

	loginWindow := ui.CreateLoginWindow(hotelApp, svc, cfg, log)
	loginWindow.Show()

	hotelApp.Run()
}
