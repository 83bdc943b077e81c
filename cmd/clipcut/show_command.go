package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"clipcut/internal/config"
	"clipcut/internal/display"
	"clipcut/internal/project"
	"clipcut/internal/timecode"
	"clipcut/internal/timeline"
)

type showClip struct {
	Title     string `json:"title"`
	Source    string `json:"source"`
	Start     string `json:"start"`
	Duration  string `json:"duration"`
	SourceIn  string `json:"source_in"`
	SourceOut string `json:"source_out"`
}

type showTrack struct {
	ID    string     `json:"id"`
	Hide  string     `json:"hide,omitempty"`
	Clips []showClip `json:"clips"`
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show <project-file>",
		Short: "Display the visible tracks and placed clips of a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			path, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve project path: %w", err)
			}
			proj, err := project.Load(path, project.Options{
				AssetBinID:        cfg.Projects.AssetBinID,
				MediaSourcePrefix: cfg.Projects.MediaSourcePrefix,
			})
			if err != nil {
				return err
			}
			visible, err := timeline.FilterVisible(proj.Tracks, proj.HideModes)
			if err != nil {
				return err
			}

			tracks, err := collectShowTracks(proj, visible)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, tracks)
			}
			return printShowTracks(cmd, tracks)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit track details as JSON")
	return cmd
}

func collectShowTracks(proj *project.Project, visible []timeline.Track) ([]showTrack, error) {
	tracks := make([]showTrack, 0, len(visible))
	for _, track := range visible {
		entry := showTrack{
			ID:    track.ID,
			Hide:  string(proj.HideModes[track.ID]),
			Clips: make([]showClip, 0, len(track.Clips)),
		}
		for _, clip := range track.Clips {
			source, err := proj.Registry.Resolve(clip.SourceID)
			if err != nil {
				return nil, err
			}
			entry.Clips = append(entry.Clips, showClip{
				Title:     display.Title(source),
				Source:    source,
				Start:     timecode.Format(clip.TimelineStart),
				Duration:  timecode.Format(clip.Duration()),
				SourceIn:  timecode.Format(clip.SourceIn),
				SourceOut: timecode.Format(clip.SourceOut),
			})
		}
		tracks = append(tracks, entry)
	}
	return tracks, nil
}

func printShowTracks(cmd *cobra.Command, tracks []showTrack) error {
	out := cmd.OutOrStdout()
	if len(tracks) == 0 {
		fmt.Fprintln(out, "No visible tracks")
		return nil
	}

	rows := make([][]string, 0)
	for _, track := range tracks {
		for _, clip := range track.Clips {
			rows = append(rows, []string{
				track.ID,
				clip.Title,
				clip.Start,
				clip.Duration,
				clip.SourceIn,
				clip.SourceOut,
			})
		}
	}
	if len(rows) == 0 {
		return errors.New("project has visible tracks but no placed clips")
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Track", "Clip", "Start", "Duration", "In", "Out"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
	))
	return nil
}
