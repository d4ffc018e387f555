package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/GregMSThompson/banks-directory/internal/dto"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List banks whose BIC or name contains the query",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ctx, err := a.load(cmd)
			if err != nil {
				return err
			}
			view := b.ListBanks(ctx, strings.Join(args, " "))
			newStyles(cmd.OutOrStdout()).printList(cmd.OutOrStdout(), view)
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <bic>",
		Short: "Show the details of one bank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ctx, err := a.load(cmd)
			if err != nil {
				return err
			}
			detail, err := b.GetBank(ctx, args[0])
			if err != nil {
				return err
			}
			newStyles(cmd.OutOrStdout()).printDetail(cmd.OutOrStdout(), detail)
			return nil
		},
	}
}

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <bic> <key>",
		Short: "Copy one detail value to the clipboard",
		Long: `Copy one detail value to the clipboard. key is one of:
bic, name, nameInEnglish, registryNumber, address.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, ctx, err := a.load(cmd)
			if err != nil {
				return err
			}
			row, err := b.CopyRow(ctx, args[0], dto.RowKey(args[1]))
			if err != nil {
				return err
			}
			newStyles(cmd.OutOrStdout()).printCopied(cmd.OutOrStdout(), row)
			return nil
		},
	}
}
