package main

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"

	"github.com/askidmobile/transcriptcore/internal/edl"
	"github.com/askidmobile/transcriptcore/internal/store"
	"github.com/askidmobile/transcriptcore/internal/transport"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// serveCommand hosts a websocket endpoint a transport backend connects to.
// On connect it loads the given project and publishes the initial EDL; every
// subsequent successful store operation republishes the EDL at a bumped
// revision, honoring the monotone-revision guarantee (P6).
func serveCommand() *cobra.Command {
	var projectPath, addr string

	cmd := &cobra.Command{
		Use:   "serve --project project.json --addr :8088",
		Short: "Serve the EDL wire protocol over a websocket for a transport backend to connect to",
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

			s := store.New(settings.Store.HistoryCapacity, log)
			if err := s.Load(pd); err != nil {
				return err
			}

			revision := 0
			http.HandleFunc("/transport", func(w http.ResponseWriter, r *http.Request) {
				conn, err := upgrader.Upgrade(w, r, nil)
				if err != nil {
					log.Error().Err(err).Msg("serve: upgrade failed")
					return
				}

				client := transport.NewClient(conn, func(ev transport.Event) {
					log.Debug().Str("type", string(ev.Type)).Msg("serve: transport event")
				}, log)
				defer client.Close()

				_, events := s.Subscribe()
				snap, err := s.Snapshot()
				if err != nil {
					return
				}
				revision++
				_ = client.Send(transport.UpdateEdl(pd.Project.ID, revision, edl.Project(snap, revision).Clips))

				for ev := range events {
					if ev.Type != store.EventProjectUpdated {
						continue
					}
					revision++
					list := edl.Project(ev.Project, revision)
					if err := client.Send(transport.UpdateEdl(pd.Project.ID, revision, list.Clips)); err != nil {
						log.Warn().Err(err).Msg("serve: failed to publish EDL")
						return
					}
				}
			})

			log.Info().Str("addr", addr).Msg("serve: listening")
			return http.ListenAndServe(addr, nil)
		},
	}

	cmd.Flags().StringVar(&projectPath, "project", "", "path to the project document to serve")
	cmd.Flags().StringVar(&addr, "addr", ":8088", "address to listen on")
	_ = cmd.MarkFlagRequired("project")
	return cmd
}
