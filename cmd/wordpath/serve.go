package main

import (
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordpath/internal/server"
	"github.com/katalvlaran/wordpath/internal/solver"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		dict  string
		watch bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ladder queries over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.ListenAddr = addr
			}
			if cmd.Flags().Changed("dictionary") {
				a.cfg.Dictionary = dict
			}
			if cmd.Flags().Changed("watch") {
				a.cfg.WatchDictionary = watch
			}
			if a.cfg.Dictionary == "" {
				return errors.New("serve: a dictionary file is required (--dictionary or WORDPATH_DICTIONARY)")
			}

			d, err := server.NewDictionary(a.cfg.Dictionary, a.logger)
			if err != nil {
				return err
			}
			a.logger.WithField("words", len(d.Words())).Info("dictionary loaded")
			if a.cfg.WatchDictionary {
				stop, err := d.Watch()
				if err != nil {
					a.logger.WithError(err).Warn("dictionary watcher unavailable (hot reload disabled)")
				} else {
					defer stop()
				}
			}

			s := &solver.Solver{
				Logger:   a.logger,
				MaxWords: a.cfg.MaxDictionaryWords,
				Timeout:  a.cfg.SearchTimeout,
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return server.New(d, s, a.logger).ListenAndServe(ctx, a.cfg.ListenAddr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "HTTP listen address")
	cmd.Flags().StringVar(&dict, "dictionary", "", "dictionary file, one word per line")
	cmd.Flags().BoolVar(&watch, "watch", true, "reload the dictionary when its file changes")

	return cmd
}
