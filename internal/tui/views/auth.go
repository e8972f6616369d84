package views

import (
	"strings"

	"github.com/hugup/hugup/internal/tui/ui"
	"github.com/rivo/tview"
)

// Auth is the two-step login form: phone number, then a verification code.
// Any code is accepted; this is a demo flow with no real verification.
type Auth struct {
	*tview.Flex
	theme *ui.Theme
	form  *tview.Form
	info  *tview.TextView

	phone   string
	onLogin func(phone string)
}

// NewAuth creates the login view.
func NewAuth(theme *ui.Theme) *Auth {
	form := tview.NewForm()
	form.SetBorder(true)
	form.SetTitle(" Welcome to hugup ")

	info := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(info, 3, 0, false).
		AddItem(form, 0, 1, true)

	a := &Auth{
		Flex:  flex,
		theme: theme,
		form:  form,
		info:  info,
	}
	a.ApplyTheme(theme)
	a.showPhoneStep()
	return a
}

// Name implements Component.
func (a *Auth) Name() string { return "Login" }

// Hints implements Component.
func (a *Auth) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Submit"},
	}
}

// ApplyTheme implements Component.
func (a *Auth) ApplyTheme(t *ui.Theme) {
	a.theme = t
	a.form.SetBorderColor(t.BorderColor)
	a.form.SetBackgroundColor(t.BgColor)
	a.form.SetTitleColor(t.TitleColor)
	a.form.SetLabelColor(t.FgColor)
	a.form.SetFieldBackgroundColor(t.TableCursorBg)
	a.form.SetFieldTextColor(t.TableCursorFg)
	a.form.SetButtonBackgroundColor(t.TableCursorBg)
	a.form.SetButtonTextColor(t.TableCursorFg)
	a.info.SetBackgroundColor(t.BgColor)
	a.info.SetTextColor(t.FgColor)
}

// SetOnLogin sets the callback invoked once the code step is submitted.
func (a *Auth) SetOnLogin(fn func(phone string)) {
	a.onLogin = fn
}

// Reset returns the form to the phone step, e.g. after logout.
func (a *Auth) Reset() {
	a.phone = ""
	a.showPhoneStep()
}

func (a *Auth) showPhoneStep() {
	a.form.Clear(true)
	a.info.SetText("\nSign in with your phone number")

	a.form.AddInputField("Phone number", a.phone, 24, nil, nil)
	a.form.AddButton("Send code", func() {
		field, _ := a.form.GetFormItem(0).(*tview.InputField)
		phone := strings.TrimSpace(field.GetText())
		if phone == "" {
			a.info.SetText("\n[red]Enter a phone number[-]")
			return
		}
		a.phone = phone
		a.showCodeStep()
	})
}

func (a *Auth) showCodeStep() {
	a.form.Clear(true)
	a.info.SetText("\nEnter the 6-digit code sent to " + a.phone)

	a.form.AddInputField("Verification code", "", 10, nil, nil)
	a.form.AddButton("Verify", func() {
		field, _ := a.form.GetFormItem(0).(*tview.InputField)
		code := strings.TrimSpace(field.GetText())
		if code == "" {
			a.info.SetText("\n[red]Enter the code[-]")
			return
		}
		if a.onLogin != nil {
			a.onLogin(a.phone)
		}
	})
	a.form.AddButton("Back", func() {
		a.showPhoneStep()
	})
}
