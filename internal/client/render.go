package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-journal-keeper/internal/app"
	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(14)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

const timeLayout = "2006-01-02 15:04"

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) success(msg string) {
	a.printf("%s\n", successStyle.Render(msg))
}

// fail prints the user-facing message for err and returns err. Usage
// errors are printed as they are.
func (a *App) fail(err error) error {
	if errors.Is(err, ErrUsage) || errors.Is(err, ErrUnknownCommand) || errors.Is(err, ErrUnknownProfileField) {
		a.printf("%s\n", errorStyle.Render(err.Error()))
		return err
	}

	a.printf("%s\n", errorStyle.Render(app.Message(err)))
	a.printf("%s\n", helpStyle.Render(err.Error()))
	return err
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)
}

func renderSnapshot(snap session.Snapshot) string {
	if !snap.Authenticated() {
		return helpStyle.Render(fmt.Sprintf("not signed in (%s)", snap.State))
	}

	lines := []string{
		titleStyle.Render(snap.User.Name),
		row("email", snap.User.Email),
		row("user id", snap.User.ID),
	}
	if snap.Profile == nil {
		lines = append(lines, helpStyle.Render("profile unavailable"))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderProfile(p models.Profile) string {
	notifications := "off"
	if p.Preferences.Notifications {
		notifications = "on"
	}

	lines := []string{
		titleStyle.Render(p.Name),
		row("email", p.Email),
		row("bio", p.Bio),
		row("born", p.DateOfBirth),
		row("theme", string(p.Preferences.Theme)),
		row("notifications", notifications),
		row("privacy", string(p.Preferences.Privacy)),
	}
	if p.HasPicture() {
		lines = append(lines, row("picture", p.ProfilePicture))
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderEntry(e models.JournalEntry) string {
	lines := []string{
		titleStyle.Render(e.Title),
		row("id", e.ID),
		row("mood", string(e.Mood)),
		row("tags", strings.Join(e.Tags, ", ")),
		row("created", e.CreatedAt.Local().Format(timeLayout)),
	}
	if e.IsPrivate {
		lines = append(lines, row("private", "yes"))
	}
	lines = append(lines, "", e.Content)
	return boxStyle.Render(strings.Join(lines, "\n"))
}

func renderEntries(entries []models.JournalEntry) string {
	if len(entries) == 0 {
		return helpStyle.Render("no entries")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			helpStyle.Render(e.CreatedAt.Local().Format(timeLayout)),
			titleStyle.Render(e.Title),
			string(e.Mood),
			helpStyle.Render(e.ID),
		))
	}
	return strings.Join(lines, "\n")
}
