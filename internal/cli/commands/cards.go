package commands

import (
	"context"
	"fmt"
	"text/tabwriter"
)

type cardAddCmd struct{}

func (cardAddCmd) Name() string        { return "card-add" }
func (cardAddCmd) Description() string { return "Append a card to a deck" }
func (cardAddCmd) Usage() string       { return "card-add <deck_pk> <front> <back>" }

func (cardAddCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	pk, err := parsePK(args[0])
	if err != nil {
		return err
	}
	c, err := env.Decks.AddCard(ctx, pk, args[1], args[2])
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Card #%d added to deck %d\n", c.Number, pk)
	return nil
}

type cardsCmd struct{}

func (cardsCmd) Name() string        { return "cards" }
func (cardsCmd) Description() string { return "List cards of a deck in order" }
func (cardsCmd) Usage() string       { return "cards <deck_pk>" }

func (cardsCmd) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	pk, err := parsePK(args[0])
	if err != nil {
		return err
	}
	cards, err := env.Decks.ListCards(ctx, pk)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		fmt.Fprintln(Out, "No cards")
		return nil
	}
	tw := tabwriter.NewWriter(Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tFRONT\tBACK")
	for _, c := range cards {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", c.Number, c.Front, c.Back)
	}
	return tw.Flush()
}

func init() {
	RegisterCmd(cardAddCmd{})
	RegisterCmd(cardsCmd{})
}
