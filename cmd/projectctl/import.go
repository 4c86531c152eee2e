package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/askidmobile/transcriptcore/internal/audioprep"
	"github.com/askidmobile/transcriptcore/internal/importer"
)

func importCommand() *cobra.Command {
	var asrPath, audioPath, outPath, audioName string

	cmd := &cobra.Command{
		Use:   "import --asr result.json --audio source.wav --out project.json",
		Short: "Run the import pipeline over an ASR result and write a project document",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			log := newLogger(settings)

			raw, err := os.ReadFile(asrPath)
			if err != nil {
				return err
			}
			var result importer.TranscriptionResult
			if err := json.Unmarshal(raw, &result); err != nil {
				return err
			}

			prepared, err := audioprep.Prepare(context.Background(), audioPath, audioprep.Options{
				FFmpegPath: settings.Audio.FFmpegPath,
				WorkDir:    settings.Dirs.TempDir,
			})
			if err != nil {
				return err
			}

			if audioName == "" {
				audioName = audioPath
			}
			pd, err := importer.Import(result, importer.AudioMeta{OriginalName: audioName}, prepared, importer.Options{
				SpacerThreshold: settings.Import.SpacerThreshold,
				MaxClipDuration: settings.Import.MaxClipDuration,
			}, log)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(pd, "", "  ")
			if err != nil {
				return err
			}
			return os.WriteFile(outPath, out, 0o644)
		},
	}

	cmd.Flags().StringVar(&asrPath, "asr", "", "path to the ASR TranscriptionResult JSON")
	cmd.Flags().StringVar(&audioPath, "audio", "", "path to the source audio file")
	cmd.Flags().StringVar(&audioName, "audio-name", "", "original audio file name recorded on the project")
	cmd.Flags().StringVar(&outPath, "out", "project.json", "where to write the resulting ProjectData document")
	_ = cmd.MarkFlagRequired("asr")
	_ = cmd.MarkFlagRequired("audio")
	return cmd
}
