package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qgame"
	"github.com/theapemachine/qgame/rpg"
)

type walkOptions struct {
	world string
	save  string
}

// NewWalkCommand walks a quantum RPG world along the given directions,
// rolling the encounters of every location reached.
func NewWalkCommand(root *RootOptions) *cobra.Command {
	opts := &walkOptions{}

	cmd := &cobra.Command{
		Use:   "walk [direction...]",
		Short: "Walk through a quantum RPG world",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(opts.world)
			if err != nil {
				return err
			}
			defer f.Close()

			world, err := rpg.LoadWorld(f)
			if err != nil {
				return err
			}

			q, err := qgame.NewQuantumWorld(root.QuantumConfig())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, world.Current.Print())

			for _, arg := range args {
				dir, ok := rpg.ParseDirection(arg)
				if !ok {
					return fmt.Errorf("%w: %q", rpg.ErrInvalidDirection, arg)
				}

				loc := world.Move(dir)
				if loc == nil {
					fmt.Fprintf(out, "\nYou cannot go %s.\n", dir)
					continue
				}

				fmt.Fprint(out, "\n"+loc.Print())

				encounter, err := world.Explore(q)
				if err != nil {
					return err
				}
				if encounter != nil {
					fmt.Fprintf(out, "%s: %s\n", strings.ToUpper(encounter.Name), encounter.Description)
					loc.RemoveEncounter(encounter)
				}
			}

			printMetrics(cmd, root, q)

			if opts.save == "" {
				return nil
			}

			save, err := os.Create(opts.save)
			if err != nil {
				return err
			}

			if err := world.Save(save); err != nil {
				save.Close()
				return err
			}
			return save.Close()
		},
	}

	cmd.Flags().StringVar(&opts.world, "world", "", "world file (yaml)")
	cmd.Flags().StringVar(&opts.save, "save", "", "write the game state here when done")
	_ = cmd.MarkFlagRequired("world")

	return cmd
}
