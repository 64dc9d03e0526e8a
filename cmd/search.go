package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/Tajudeen-boss/Neptune-task/internal/model"
	"github.com/Tajudeen-boss/Neptune-task/internal/search"
	"github.com/Tajudeen-boss/Neptune-task/internal/store"
	"github.com/Tajudeen-boss/Neptune-task/pkg/anthropic"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a one-shot search from the terminal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")

		st := store.NewMemStore()
		defer st.Close()

		aiClient := anthropic.NewClient(cfg.Anthropic.Key)
		pipeline := search.NewPipeline(st, aiClient, cfg.Anthropic)

		result, err := pipeline.Search(cmd.Context(), model.SearchRequest{Query: query})
		if err != nil {
			return eris.Wrap(err, "search")
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return eris.Wrap(err, "encode result")
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
