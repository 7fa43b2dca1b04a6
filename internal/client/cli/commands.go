package cli

import (
	"context"
	"errors"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/firstweek/internal/common"
)

func parseID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, errors.New("usage: <command> <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, common.ErrorInvalidID
	}
	return id, nil
}

func (a *App) List(ctx context.Context) error {
	all, err := a.client.List(ctx)
	if err != nil {
		printf(a.out, "Error: %v\n", err)
		return err
	}

	if len(all) == 0 {
		printf(a.out, "No members.\n")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	printf(tw, "ID\tNAME\tEMAIL\n")
	for _, m := range all {
		printf(tw, "%d\t%s\t%s\n", m.ID, m.Name, m.Email)
	}
	return tw.Flush()
}

func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}

	m, err := a.client.Create(ctx, name, email)
	if err != nil {
		printf(a.out, "Error: %v\n", err)
		return err
	}

	printf(a.out, "Member %d created\n", m.ID)
	return nil
}

func (a *App) Get(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		printf(a.out, "Error: %v\n", err)
		return err
	}

	m, err := a.client.Get(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		printf(a.out, "Member %d not found\n", id)
		return err
	}
	if err != nil {
		printf(a.out, "Error: %v\n", err)
		return err
	}

	printf(a.out, "ID:    %d\nName:  %s\nEmail: %s\n", m.ID, m.Name, m.Email)
	return nil
}

func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := parseID(args)
	if err != nil {
		printf(a.out, "Error: %v\n", err)
		return err
	}

	if err := a.client.Delete(ctx, id); err != nil {
		printf(a.out, "Error: %v\n", err)
		return err
	}

	printf(a.out, "Member %d deleted\n", id)
	return nil
}
