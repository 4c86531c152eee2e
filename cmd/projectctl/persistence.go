package main

import (
	"github.com/spf13/cobra"

	"github.com/askidmobile/transcriptcore/internal/persistence"
)

func saveCommand() *cobra.Command {
	var projectPath, audioPath, pkgPath string

	cmd := &cobra.Command{
		Use:   "save --project project.json --audio canonical.wav --out project.transcriptcore",
		Short: "Bundle a project document and its canonical audio into a package",
		RunE: func(cmd *cobra.Command, args []string) error {
			pd, err := readProjectData(projectPath)
			if err != nil {
				return err
			}
			return persistence.Save(pkgPath, pd, audioPath)
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "path to the project document")
	cmd.Flags().StringVar(&audioPath, "audio", "", "path to the current canonical WAV")
	cmd.Flags().StringVar(&pkgPath, "out", "project.transcriptcore", "where to write the package")
	_ = cmd.MarkFlagRequired("project")
	_ = cmd.MarkFlagRequired("audio")
	return cmd
}

func loadCommand() *cobra.Command {
	var pkgPath, outPath, tempDir string

	cmd := &cobra.Command{
		Use:   "load --package project.transcriptcore --out project.json",
		Short: "Open a project package, extracting its embedded audio and writing out the project document",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			if tempDir == "" {
				tempDir = settings.Dirs.TempDir
			}

			loaded, err := persistence.Load(pkgPath, tempDir)
			if err != nil {
				return err
			}
			cmd.Printf("extracted audio to %s\n", loaded.ExtractedAudioPath)
			return writeProjectData(outPath, loaded.Project)
		},
	}

	cmd.Flags().StringVar(&pkgPath, "package", "", "path to the project package")
	cmd.Flags().StringVar(&outPath, "out", "project.json", "where to write the extracted project document")
	cmd.Flags().StringVar(&tempDir, "temp-dir", "", "directory for extracted audio (default: configured temp dir)")
	_ = cmd.MarkFlagRequired("package")
	return cmd
}
