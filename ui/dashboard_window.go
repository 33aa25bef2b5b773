package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/arpancodez/hotelmgsys/auth"
	"github.com/arpancodez/hotelmgsys/config"
)

type navItem struct {
	Title string
	Info  string
}

// navItems lists the dashboard modules. Each one is still under
// development and only shows an informational pop-up.
var navItems = []navItem{
	{"Room Management", "Room Management module is under development.\nThis will allow you to:" +
		"\n• Add/edit/delete rooms\n• View room status\n• Set room rates"},
	{"Bookings", "Bookings module is under development.\nThis will allow you to:" +
		"\n• Create new bookings\n• View existing bookings\n• Modify/cancel bookings"},
	{"Guests", "Guests module is under development.\nThis will allow you to:" +
		"\n• Manage guest profiles\n• View guest history\n• Track preferences"},
	{"Staff", "Staff module is under development.\nThis will allow you to:" +
		"\n• Manage staff records\n• Assign roles\n• Track schedules"},
	{"Billing", "Billing module is under development.\nThis will allow you to:" +
		"\n• Generate invoices\n• Process payments\n• View transaction history"},
	{"Reports", "Reports module is under development.\nThis will allow you to:" +
		"\n• Generate occupancy reports\n• View revenue analytics\n• Export data"},
}

// Greeting renders the welcome line shown below the dashboard header.
func Greeting(name string) string {
	return fmt.Sprintf("Welcome, %s!", name)
}

// CreateDashboardWindow builds the main window: header bar with logout,
// a welcome section and the navigation grid. Logout revokes the session
// and returns to the login window.
func CreateDashboardWindow(app fyne.App, svc *auth.Service, sess auth.Session, cfg config.Settings, log *slog.Logger) fyne.Window {
	window := app.NewWindow("Hotel Management System - Dashboard")
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	title := widget.NewLabel("Hotel Management System")
	title.TextStyle = fyne.TextStyle{Bold: true}

	logoutBtn := widget.NewButton("Logout", func() {
		log.Info("user logging out", "username", sess.Username)
		svc.Revoke(sess.Token)
		login := CreateLoginWindow(app, svc, cfg, log)
		window.Close()
		login.Show()
	})
	logoutBtn.Importance = widget.DangerImportance

	header := container.NewHBox(title, layout.NewSpacer(), logoutBtn)

	heading := widget.NewLabel(Greeting(sess.Username))
	heading.TextStyle = fyne.TextStyle{Bold: true}
	info := widget.NewLabel("Select an option below to manage your hotel operations.")
	welcome := container.NewVBox(heading, info)

	grid := container.NewGridWithColumns(3)
	for _, item := range navItems {
		item := item
		btn := widget.NewButton(item.Title, func() {
			log.Info("module not yet implemented", "module", item.Title)
			dialog.ShowInformation(item.Title, item.Info, window)
		})
		grid.Add(btn)
	}

	window.SetContent(container.NewBorder(
		container.NewVBox(header, widget.NewSeparator(), welcome),
		nil, nil, nil,
		grid,
	))
	return window
}
