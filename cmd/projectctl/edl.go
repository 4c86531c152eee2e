package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/askidmobile/transcriptcore/internal/edl"
)

func edlCommand() *cobra.Command {
	var projectPath, outPath string
	var revision int

	cmd := &cobra.Command{
		Use:   "edl --project project.json",
		Short: "Project the current edit decision list from a project document",
		RunE: func(cmd *cobra.Command, args []string) error {
			pd, err := readProjectData(projectPath)
			if err != nil {
				return err
			}
			list := edl.Project(pd, revision)

			out, err := json.MarshalIndent(list, "", "  ")
			if err != nil {
				return err
			}
			if outPath == "" {
				_, err := cmd.OutOrStdout().Write(append(out, '\n'))
				return err
			}
			return os.WriteFile(outPath, out, 0o644)
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "path to the project document")
	cmd.Flags().StringVar(&outPath, "out", "", "where to write the EDL JSON (default: stdout)")
	cmd.Flags().IntVar(&revision, "revision", 1, "revision number to stamp on the published EDL")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
