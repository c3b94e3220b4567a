package client

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/internal/session"
	"github.com/MKhiriev/go-journal-keeper/models"
)

func (a *App) profile(ctx context.Context, args []string) error {
	if len(args) == 0 {
		snap := a.holder.Snapshot()
		if !snap.Authenticated() {
			return a.fail(session.ErrNotAuthenticated)
		}
		if snap.Profile == nil {
			a.printf("%s\n", renderSnapshot(snap))
			return nil
		}
		a.printf("%s\n", renderProfile(*snap.Profile))
		return nil
	}

	if args[0] != "set" || len(args) < 2 {
		return a.fail(fmt.Errorf("%w: profile set key=value ...", ErrUsage))
	}

	var current *models.Profile
	if snap := a.holder.Snapshot(); snap.Profile != nil {
		current = snap.Profile
	}

	update, err := parseProfileUpdate(args[1:], current)
	if err != nil {
		return a.fail(err)
	}

	res := a.holder.UpdateProfile(ctx, update)
	if !res.Success {
		return a.fail(res.Err())
	}

	a.success("profile updated")
	a.printf("%s\n", renderProfile(res.Data))
	return nil
}

// parseProfileUpdate turns key=value pairs into a profile update. The
// preference keys start from the current preferences so that setting one
// keeps the other two.
func parseProfileUpdate(pairs []string, current *models.Profile) (models.ProfileUpdate, error) {
	var update models.ProfileUpdate

	prefs := models.DefaultPreferences()
	if current != nil {
		prefs = current.Preferences
	}

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return update, fmt.Errorf("%w: %q is not key=value", ErrUsage, pair)
		}

		switch strings.ToLower(key) {
		case "name":
			update.Name = models.Ptr(value)
		case "email":
			update.Email = models.Ptr(value)
		case "bio":
			update.Bio = models.Ptr(value)
		case "dateofbirth", "born":
			update.DateOfBirth = models.Ptr(value)
		case "theme":
			prefs.Theme = models.Theme(value)
			update.Preferences = &prefs
		case "privacy":
			prefs.Privacy = models.Privacy(value)
			update.Preferences = &prefs
		case "notifications":
			on, err := strconv.ParseBool(value)
			if err != nil {
				return update, fmt.Errorf("%w: notifications=%q", ErrUsage, value)
			}
			prefs.Notifications = on
			update.Preferences = &prefs
		default:
			return update, fmt.Errorf("%w: %q", ErrUnknownProfileField, key)
		}
	}

	return update, nil
}

func (a *App) picture(ctx context.Context, args []string) error {
	switch {
	case len(args) == 2 && args[0] == "set":
		file, err := readPictureFile(args[1])
		if err != nil {
			return a.fail(err)
		}

		res := a.holder.UpdatePicture(ctx, file)
		if !res.Success {
			return a.fail(res.Err())
		}
		a.success("picture updated")
		a.printf("%s\n", renderProfile(res.Data))
		return nil

	case len(args) == 1 && args[0] == "rm":
		res := a.holder.RemovePicture(ctx)
		if !res.Success {
			return a.fail(res.Err())
		}
		a.success("picture removed")
		return nil

	default:
		return a.fail(fmt.Errorf("%w: picture set <path> | picture rm", ErrUsage))
	}
}

func readPictureFile(path string) (models.File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return models.File{}, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if mimeType == "" {
		mimeType = http.DetectContentType(content)
	}

	return models.File{
		URI:      path,
		Name:     filepath.Base(path),
		MimeType: mimeType,
		Content:  content,
	}, nil
}
