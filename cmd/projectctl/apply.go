package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/askidmobile/transcriptcore/internal/project"
	"github.com/askidmobile/transcriptcore/internal/store"
)

func applyCommand() *cobra.Command {
	var projectPath, opPath, outPath string

	cmd := &cobra.Command{
		Use:   "apply --project project.json --op op.json --out project.json",
		Short: "Apply a single edit operation to a project document",
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

			opRaw, err := os.ReadFile(opPath)
			if err != nil {
				return err
			}
			var op store.EditOperation
			if err := json.Unmarshal(opRaw, &op); err != nil {
				return err
			}

			s := store.New(settings.Store.HistoryCapacity, log)
			if err := s.Load(pd); err != nil {
				return err
			}
			result, err := s.Apply(op)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = projectPath
			}
			return writeProjectData(outPath, result)
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "path to the project document to mutate")
	cmd.Flags().StringVar(&opPath, "op", "", "path to a JSON-encoded store.EditOperation")
	cmd.Flags().StringVar(&outPath, "out", "", "where to write the resulting project document (default: overwrite --project)")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("op")
	return cmd
}

func readProjectData(path string) (project.ProjectData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return project.ProjectData{}, err
	}
	var pd project.ProjectData
	if err := json.Unmarshal(raw, &pd); err != nil {
		return project.ProjectData{}, err
	}
	return pd, nil
}

func writeProjectData(path string, pd project.ProjectData) error {
	out, err := json.MarshalIndent(pd, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}
