package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/askidmobile/transcriptcore/internal/store"
)

// historyCommand applies a batch of operations in sequence and reports the
// resulting bounded history log — useful for replaying an edit session
// recorded elsewhere against a fresh project document.
func historyCommand() *cobra.Command {
	var projectPath, opsPath, outPath string

	cmd := &cobra.Command{
		Use:   "history --project project.json --ops ops.json --out project.json",
		Short: "Apply a batch of edit operations and report the resulting history log",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			log := newLogger(settings)

			pd, err := readProjectData(projectPath)
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(opsPath)
			if err != nil {
				return err
			}
			var ops []store.EditOperation
			if err := json.Unmarshal(raw, &ops); err != nil {
				return err
			}

			s := store.New(settings.Store.HistoryCapacity, log)
			if err := s.Load(pd); err != nil {
				return err
			}

			var result = pd
			for _, op := range ops {
				result, err = s.Apply(op)
				if err != nil {
					return err
				}
			}

			hist, err := json.MarshalIndent(s.History(), "", "  ")
			if err != nil {
				return err
			}
			cmd.Println(string(hist))

			if outPath == "" {
				outPath = projectPath
			}
			return writeProjectData(outPath, result)
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "path to the project document")
	cmd.Flags().StringVar(&opsPath, "ops", "", "path to a JSON array of store.EditOperation values")
	cmd.Flags().StringVar(&outPath, "out", "", "where to write the resulting project document (default: overwrite --project)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("ops")
	return cmd
}
