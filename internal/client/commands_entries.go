package client

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-journal-keeper/models"
)

func (a *App) entries(ctx context.Context, args []string) error {
	var res models.Result[[]models.JournalEntry]

	switch {
	case len(args) == 0:
		res = a.holder.ListEntries(ctx)
	case len(args) >= 2 && args[0] == "search":
		res = a.holder.SearchEntries(ctx, strings.Join(args[1:], " "))
	case len(args) == 2 && args[0] == "mood":
		res = a.holder.EntriesByMood(ctx, models.Mood(args[1]))
	default:
		return a.fail(fmt.Errorf("%w: entries [search <term> | mood <mood>]", ErrUsage))
	}

	if !res.Success {
		return a.fail(res.Err())
	}
	a.printf("%s\n", renderEntries(res.Data))
	return nil
}

func (a *App) entry(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.fail(fmt.Errorf("%w: entry add|show|edit|rm", ErrUsage))
	}

	switch args[0] {
	case "add":
		return a.addEntry(ctx, args[1:])
	case "show":
		return a.withEntryID(args[1:], func(id string) error { return a.showEntry(ctx, id) })
	case "edit":
		return a.withEntryID(args[1:], func(id string) error { return a.editEntry(ctx, id, args[2:]) })
	case "rm":
		return a.withEntryID(args[1:], func(id string) error { return a.removeEntry(ctx, id) })
	default:
		return a.fail(fmt.Errorf("%w: entry %q", ErrUnknownCommand, args[0]))
	}
}

func (a *App) withEntryID(args []string, fn func(id string) error) error {
	if len(args) == 0 || strings.HasPrefix(args[0], "-") {
		return a.fail(fmt.Errorf("%w: entry id is required", ErrUsage))
	}
	return fn(args[0])
}

func (a *App) addEntry(ctx context.Context, args []string) error {
	var (
		draft models.JournalEntryDraft
		mood  string
	)

	fs := newFlagSet("entry add")
	fs.StringVar(&draft.Title, "title", "", "entry title")
	fs.StringVar(&draft.Content, "content", "", "entry text")
	fs.StringVar(&mood, "mood", "", "one of happy, sad, angry, excited, calm, anxious, neutral")
	fs.StringVar(&draft.Tags, "tags", "", "comma separated tags")
	fs.BoolVar(&draft.IsPrivate, "private", false, "hide the entry")
	if err := fs.Parse(args); err != nil {
		return a.fail(fmt.Errorf("%w: %w", ErrUsage, err))
	}
	draft.Mood = models.Mood(mood)

	res := a.holder.CreateEntry(ctx, draft)
	if !res.Success {
		return a.fail(res.Err())
	}

	a.success("entry created")
	a.printf("%s\n", renderEntry(res.Data))
	return nil
}

func (a *App) showEntry(ctx context.Context, id string) error {
	res := a.holder.GetEntry(ctx, id)
	if !res.Success {
		return a.fail(res.Err())
	}
	a.printf("%s\n", renderEntry(res.Data))
	return nil
}

// editEntry writes only the flags given on the command line.
func (a *App) editEntry(ctx context.Context, id string, args []string) error {
	var (
		title, content, mood, tags string
		private                    bool
	)

	fs := newFlagSet("entry edit")
	fs.StringVar(&title, "title", "", "entry title")
	fs.StringVar(&content, "content", "", "entry text")
	fs.StringVar(&mood, "mood", "", "entry mood")
	fs.StringVar(&tags, "tags", "", "comma separated tags")
	fs.BoolVar(&private, "private", false, "hide the entry")
	if err := fs.Parse(args); err != nil {
		return a.fail(fmt.Errorf("%w: %w", ErrUsage, err))
	}

	var update models.JournalEntryUpdate
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			update.Title = models.Ptr(title)
		case "content":
			update.Content = models.Ptr(content)
		case "mood":
			update.Mood = models.Ptr(models.Mood(mood))
		case "tags":
			update.Tags = models.Ptr(tags)
		case "private":
			update.IsPrivate = models.Ptr(private)
		}
	})

	res := a.holder.UpdateEntry(ctx, id, update)
	if !res.Success {
		return a.fail(res.Err())
	}

	a.success("entry updated")
	a.printf("%s\n", renderEntry(res.Data))
	return nil
}

func (a *App) removeEntry(ctx context.Context, id string) error {
	res := a.holder.DeleteEntry(ctx, id)
	if !res.Success {
		return a.fail(res.Err())
	}
	a.success("entry removed")
	return nil
}
