package commands

import (
	"context"
	"fmt"
	"text/tabwriter"
)

type usersCmd struct{}

func (usersCmd) Name() string        { return "users" }
func (usersCmd) Description() string { return "List registered users" }
func (usersCmd) Usage() string       { return "users" }

func (usersCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	users, err := env.Users.List(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Fprintln(Out, "No users")
		return nil
	}
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PK\tUSERNAME\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", u.PK, u.Username, u.Email)
	}
	return tw.Flush()
}

type userDeleteCmd struct{}

func (userDeleteCmd) Name() string { return "user-delete" }
func (userDeleteCmd) Description() string {
	return "Delete a user together with all their decks and cards"
}
func (userDeleteCmd) Usage() string { return "user-delete <username>" }

func (userDeleteCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	if err := env.Users.Delete(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(Out, "User %s deleted\n", args[0])
	return nil
}

func init() {
	RegisterCmd(usersCmd{})
	RegisterCmd(userDeleteCmd{})
}
