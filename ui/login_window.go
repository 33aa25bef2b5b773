package ui

import (
	"errors"
	"log/slog"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/arpancodez/hotelmgsys/auth"
	"github.com/arpancodez/hotelmgsys/config"
	"github.com/arpancodez/hotelmgsys/utils"
)

// signinError validates the sign-in form before any service call.
// Returns an empty string when the form is acceptable.
func signinError(username, password string) string {
	if username == "" || password == "" {
		return "Please enter both username and password."
	}
	return ""
}

// signupError validates the sign-up form before any service call.
func signupError(username, password, confirm string) string {
	if username == "" || password == "" {
		return "Please fill all required fields."
	}
	if password != confirm {
		return "Passwords do not match."
	}
	return ""
}

// CreateLoginWindow builds the authentication window with Sign In and
// Sign Up tabs. On successful sign-in it opens the dashboard and
// closes itself.
func CreateLoginWindow(app fyne.App, svc *auth.Service, cfg config.Settings, log *slog.Logger) fyne.Window {
	window := app.NewWindow("Hotel Management System - Authentication")
	window.Resize(fyne.NewSize(520, 560))
	window.SetFixedSize(true)

	title := widget.NewLabel("Hotel Management System")
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter
	subtitle := widget.NewLabel("Welcome. Please sign in or create an account.")
	subtitle.Alignment = fyne.TextAlignCenter

	var tabs *container.AppTabs
	signin := buildSigninForm(window, app, svc, cfg, log)
	signup := buildSignupForm(window, svc, log, func() {
		tabs.SelectIndex(0)
	})
	tabs = container.NewAppTabs(
		container.NewTabItem("Sign In", signin),
		container.NewTabItem("Sign Up", signup),
	)

	window.SetContent(container.NewVBox(title, subtitle, tabs))
	return window
}

func buildSigninForm(window fyne.Window, app fyne.App, svc *auth.Service, cfg config.Settings, log *slog.Logger) fyne.CanvasObject {
	usernameEntry := widget.NewEntry()
	usernameEntry.SetPlaceHolder("Username")

	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Password")

	showPassword := false
	visibilityBtn := widget.NewButtonWithIcon("", theme.VisibilityIcon(), nil)
	visibilityBtn.OnTapped = func() {
		showPassword = !showPassword
		passwordEntry.Password = !showPassword
		if showPassword {
			visibilityBtn.SetIcon(theme.VisibilityOffIcon())
		} else {
			visibilityBtn.SetIcon(theme.VisibilityIcon())
		}
		passwordEntry.Refresh()
	}

	helper := widget.NewLabel("Use your registered account to continue.")

	signinBtn := widget.NewButton("Sign In", func() {
		username := strings.TrimSpace(usernameEntry.Text)
		password := strings.TrimSpace(passwordEntry.Text)

		if msg := signinError(username, password); msg != "" {
			dialog.ShowError(errors.New(msg), window)
			return
		}
		if !svc.ValidateCredentials(username, password) {
			log.Warn("failed sign-in", "username", username)
			dialog.ShowError(errors.New("Invalid username or password."), window)
			return
		}

		completeSignin(app, svc, cfg, log, window, username)
	})

	return container.NewVBox(
		usernameEntry,
		container.NewBorder(nil, nil, nil, visibilityBtn, passwordEntry),
		helper,
		signinBtn,
	)
}

// completeSignin opens a session for the user, swaps the login window
// for the dashboard and greets them there. The welcome dialog parents
// on the dashboard because the login window is already closing.
func completeSignin(app fyne.App, svc *auth.Service, cfg config.Settings, log *slog.Logger, loginWindow fyne.Window, username string) fyne.Window {
	sess := svc.OpenSession(username)
	dashboard := CreateDashboardWindow(app, svc, sess, cfg, log)
	loginWindow.Close()
	dashboard.Show()
	dialog.ShowInformation("Welcome", "Signed in as "+username, dashboard)
	return dashboard
}

func buildSignupForm(window fyne.Window, svc *auth.Service, log *slog.Logger, onCreated func()) fyne.CanvasObject {
	usernameEntry := widget.NewEntry()
	usernameEntry.SetPlaceHolder("Username")

	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Password")

	confirmEntry := widget.NewPasswordEntry()
	confirmEntry.SetPlaceHolder("Confirm Password")

	strength := widget.NewProgressBar()
	passwordEntry.OnChanged = func(text string) {
		strength.SetValue(float64(utils.EvaluateStrength(text)) / 100)
	}

	suggestBtn := widget.NewButtonWithIcon("Suggest", theme.ViewRefreshIcon(), func() {
		suggested, err := utils.SuggestPassword(16)
		if err != nil {
			dialog.ShowError(err, window)
			return
		}
		passwordEntry.SetText(suggested)
		confirmEntry.SetText(suggested)
	})

	note := widget.NewLabel("Password will be stored securely.")

	createBtn := widget.NewButton("Create Account", func() {
		username := strings.TrimSpace(usernameEntry.Text)
		password := strings.TrimSpace(passwordEntry.Text)
		confirm := strings.TrimSpace(confirmEntry.Text)

		if msg := signupError(username, password, confirm); msg != "" {
			dialog.ShowError(errors.New(msg), window)
			return
		}
		if !svc.RegisterUser(username, password) {
			dialog.ShowError(errors.New("Username may already exist or server error."), window)
			return
		}

		dialog.ShowInformation("Success", "Account created. You can now sign in.", window)
		onCreated()
	})

	return container.NewVBox(
		usernameEntry,
		container.NewBorder(nil, nil, nil, suggestBtn, passwordEntry),
		confirmEntry,
		strength,
		note,
		createBtn,
	)
}
