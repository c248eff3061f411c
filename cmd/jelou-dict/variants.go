package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/jelou/internal/service/pronounce"
)

func variantsCommand(deps *runtimeDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "variants WORD",
		Short: "Print the variants of a word and the one chosen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := deps.app.Pronounce
			if err := svc.ValidateInput("word", args[0]); err != nil {
				return err
			}

			exp, err := svc.ExplainWord(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			res, err := svc.TranslateWord(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printExplanation(cmd, exp, res)
			return nil
		},
	}
}

func printExplanation(cmd *cobra.Command, exp pronounce.Explanation, res pronounce.WordResult) {
	out := cmd.OutOrStdout()
	for _, v := range exp.Variants {
		marker := " "
		if v.Index == exp.Resolution.Variant.Index {
			marker = "*"
		}
		fmt.Fprintf(out, "%s (%d) %s\n", marker, v.Index+1, v)
	}
	fmt.Fprintf(out, "chosen: (%d) by %s\n", exp.Resolution.Variant.Index+1, exp.Resolution.Reason)
	fmt.Fprintf(out, "ipa: %s\nspanish: %s\n", res.IPA, res.Spanish)
}
