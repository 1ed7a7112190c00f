package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"alphactl/core"
	"alphactl/display"
	"alphactl/models"
)

var (
	evalModelID int
	evalFormula string
	evalShowDOT bool
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "evaluate a registered model's named formula and print the resulting policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		spec, ok := models.Lookup(evalModelID)
		if !ok {
			return fmt.Errorf("unknown model id %d", evalModelID)
		}
		var chosen *models.FormulaSpec
		for i := range spec.Formulas {
			if spec.Formulas[i].Name == evalFormula {
				chosen = &spec.Formulas[i]
			}
		}
		if chosen == nil {
			return fmt.Errorf("model %s has no formula named %q", spec.Name, evalFormula)
		}

		lts := spec.Build()
		policy, err := core.Sat(lts, chosen.Formula)
		if err != nil {
			return err
		}

		if evalShowDOT {
			fmt.Println(display.DOT(core.Induced(lts, policy), policy))
			return nil
		}
		for _, pair := range policy {
			fmt.Printf("(%s, %s)\n", pair.State, pair.Action)
		}
		return nil
	},
}

func init() {
	evalCmd.Flags().IntVar(&evalModelID, "model", 1, "registered model id")
	evalCmd.Flags().StringVar(&evalFormula, "formula", "", "registered formula name")
	evalCmd.Flags().BoolVar(&evalShowDOT, "dot", false, "print the induced LTS as DOT instead of the raw policy")
	rootCmd.AddCommand(evalCmd)
}
