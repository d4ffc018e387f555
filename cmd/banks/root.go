package main

import (
	"context"
	"log/slog"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/GregMSThompson/banks-directory/internal/bootstrap"
	"github.com/GregMSThompson/banks-directory/internal/clipboard"
	"github.com/GregMSThompson/banks-directory/internal/config"
	"github.com/GregMSThompson/banks-directory/internal/dto"
	"github.com/GregMSThompson/banks-directory/internal/services"
	"github.com/GregMSThompson/banks-directory/pkg/logger"
)

var errFetchFailed = eris.New("bank directory failed to load")

type browser interface {
	ListBanks(ctx context.Context, query string) dto.ListView
	GetBank(ctx context.Context, bic string) (dto.BankDetail, error)
	CopyRow(ctx context.Context, bic string, key dto.RowKey) (dto.DetailRow, error)
}

type app struct {
	v       *viper.Viper
	clip    clipboard.Writer
	envFile string
}

func newRootCmd(clip clipboard.Writer) *cobra.Command {
	a := &app{v: viper.New(), clip: clip}

	root := &cobra.Command{
		Use:   "banks",
		Short: "Browse the Russian bank directory",
		Long: `banks downloads the public bank directory once and lets you filter it,
inspect a bank's details and copy any detail value to the clipboard.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.String("url", "", "bank directory endpoint (env BANKSURL)")
	flags.String("log-level", "", "debug, info, warn or error (env LOGLEVEL)")
	flags.StringVar(&a.envFile, "env-file", "", "dotenv file to load before reading the environment")
	_ = a.v.BindPFlag(config.KeyBanksURL, flags.Lookup("url"))
	_ = a.v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		newListCmd(a),
		newShowCmd(a),
		newCopyCmd(a),
	)
	return root
}

// load fetches the directory once and blocks until it is loaded or failed.
// A failed fetch prints the error text and returns errFetchFailed.
func (a *app) load(cmd *cobra.Command) (browser, context.Context, error) {
	cfg := config.Load(a.v, a.envFile)
	bs, err := bootstrap.Run(cfg, func(level slog.Level) slog.Handler {
		return logger.NewLineHandlerTo(cmd.ErrOrStderr(), level)
	})
	if err != nil {
		return nil, nil, err
	}

	ctx := logger.ToContext(cmd.Context(), bs.Log)
	directory := services.NewDirectoryService(bs.BanksAdapter)
	if err := directory.Start(ctx); err != nil {
		return nil, nil, err
	}
	snap, err := directory.Wait(ctx)
	if err != nil {
		return nil, nil, eris.Wrap(err, "waiting for bank directory")
	}
	if snap.IsError {
		newStyles(cmd.OutOrStdout()).printError(cmd.OutOrStdout(), dto.ErrorText)
		return nil, nil, errFetchFailed
	}

	return services.NewBrowserService(directory, a.clip), ctx, nil
}
