package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"papyr"
)

// Document is the single value the store holds: the whole note collection.
type Document struct {
	Notes []Note `json:"notes" toml:"notes"`
}

type Note struct {
	ID        string    `json:"id" toml:"id"`
	Text      string    `json:"text" toml:"text"`
	Done      bool      `json:"done" toml:"done"`
	CreatedAt time.Time `json:"created_at" toml:"created_at"`
}

func runCommand(out io.Writer, db *papyr.DB[Document], name string, args []string) error {
	switch name {
	case "add":
		return cmdAdd(out, db, args)
	case "list":
		return cmdList(out, db)
	case "get":
		return cmdGet(out, db, args)
	case "done":
		return cmdDone(db, args)
	case "rm":
		return cmdRm(db, args)
	default:
		return fmt.Errorf("unknown command %q", name)
	}
}

func cmdAdd(out io.Writer, db *papyr.DB[Document], args []string) error {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return fmt.Errorf("usage: add <text...>")
	}
	note := Note{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := db.Update(func(d *Document) {
		d.Notes = append(d.Notes, note)
	}); err != nil {
		return err
	}
	fmt.Fprintf(out, "added %s\n", shortID(note.ID))
	return nil
}

func cmdList(out io.Writer, db *papyr.DB[Document]) error {
	notes := db.Data().Notes
	if len(notes) == 0 {
		fmt.Fprintln(out, "(no notes)")
		return nil
	}
	for _, n := range notes {
		mark := " "
		if n.Done {
			mark = "x"
		}
		fmt.Fprintf(out, "[%s] %s  %s  (%s)\n", mark, shortID(n.ID), n.Text, n.CreatedAt.Format("2006-01-02"))
	}
	return nil
}

func cmdGet(out io.Writer, db *papyr.DB[Document], args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: get <id>")
	}
	idx, err := findNote(db.Data(), args[0])
	if err != nil {
		return err
	}
	n := db.Data().Notes[idx]
	fmt.Fprintf(out, "id:      %s\n", n.ID)
	fmt.Fprintf(out, "text:    %s\n", n.Text)
	fmt.Fprintf(out, "done:    %v\n", n.Done)
	fmt.Fprintf(out, "created: %s\n", n.CreatedAt.Format(time.RFC3339))
	return nil
}

func cmdDone(db *papyr.DB[Document], args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: done <id>")
	}
	idx, err := findNote(db.Data(), args[0])
	if err != nil {
		return err
	}
	return db.Update(func(d *Document) {
		d.Notes[idx].Done = true
	})
}

func cmdRm(db *papyr.DB[Document], args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rm <id>")
	}
	idx, err := findNote(db.Data(), args[0])
	if err != nil {
		return err
	}
	return db.Update(func(d *Document) {
		d.Notes = append(d.Notes[:idx], d.Notes[idx+1:]...)
	})
}

// findNote resolves an id prefix to a note index. Ambiguous or unknown
// prefixes are errors.
func findNote(d *Document, prefix string) (int, error) {
	found := -1
	for i, n := range d.Notes {
		if strings.HasPrefix(n.ID, prefix) {
			if found >= 0 {
				return 0, fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			found = i
		}
	}
	if found < 0 {
		return 0, fmt.Errorf("no note with id %q", prefix)
	}
	return found, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
