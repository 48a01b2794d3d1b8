package commands

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"
)

type deckAddCmd struct{}

func (deckAddCmd) Name() string        { return "deck-add" }
func (deckAddCmd) Description() string { return "Create a deck owned by a user" }
func (deckAddCmd) Usage() string       { return "deck-add <username> <name> [desc]" }

func (deckAddCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	desc := strings.Join(args[2:], " ")
	d, err := env.Decks.CreateDeck(ctx, args[0], args[1], desc)
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deck %d created\n", d.PK)
	return nil
}

type decksCmd struct{}

func (decksCmd) Name() string        { return "decks" }
func (decksCmd) Description() string { return "List decks of a user" }
func (decksCmd) Usage() string       { return "decks <username>" }

func (decksCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	decks, err := env.Decks.ListDecks(ctx, args[0])
	if err != nil {
		return err
	}
	if len(decks) == 0 {
		fmt.Fprintln(Out, "No decks")
		return nil
	}
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PK\tNAME\tDESC")
	for _, d := range decks {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", d.PK, d.Name, d.Desc)
	}
	return tw.Flush()
}

type deckDeleteCmd struct{}

func (deckDeleteCmd) Name() string        { return "deck-delete" }
func (deckDeleteCmd) Description() string { return "Delete a deck and its cards" }
func (deckDeleteCmd) Usage() string       { return "deck-delete <deck_pk>" }

func (deckDeleteCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	pk, err := parsePK(args[0])
	if err != nil {
		return err
	}
	if err := env.Decks.DeleteDeck(ctx, pk); err != nil {
		return err
	}
	fmt.Fprintf(Out, "Deck %d deleted\n", pk)
	return nil
}

func init() {
	RegisterCmd(deckAddCmd{})
	RegisterCmd(decksCmd{})
	RegisterCmd(deckDeleteCmd{})
}
