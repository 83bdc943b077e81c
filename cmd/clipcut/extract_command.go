package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"clipcut/internal/config"
	"clipcut/internal/extract"
	"clipcut/internal/timecode"
)

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var jobsFile string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Run configured clip extractions and write per-day trim files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			path := strings.TrimSpace(jobsFile)
			if path == "" {
				return errors.New("a jobs file is required (--file)")
			}
			expanded, err := config.ExpandPath(path)
			if err != nil {
				return fmt.Errorf("resolve jobs file path: %w", err)
			}

			jobs, err := extract.LoadJobs(expanded)
			if err != nil {
				return err
			}
			if len(jobs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No jobs configured")
				return nil
			}

			extractor, err := extract.New(cfg, logger)
			if err != nil {
				return err
			}
			results, err := extractor.Run(jobs)
			if err != nil {
				return err
			}

			printResults(cmd, results)
			return nil
		},
	}

	cmd.Flags().StringVarP(&jobsFile, "file", "f", "", "Path to the jobs file (day label to clip window)")
	return cmd
}

func printResults(cmd *cobra.Command, results []extract.Result) {
	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		for _, result := range results {
			fmt.Fprintf(out, "%s: %d file(s), window %s-%s -> %s\n",
				result.Job.Label,
				len(result.Output),
				timecode.Format(result.Job.Window.Start),
				timecode.Format(result.Job.Window.End),
				result.OutputPath,
			)
		}
		return
	}

	rows := make([][]string, 0, len(results))
	for _, result := range results {
		clips := 0
		for _, instructions := range result.Output {
			clips += len(instructions)
		}
		rows = append(rows, []string{
			result.Job.Label,
			timecode.Format(result.Job.Window.Start) + " - " + timecode.Format(result.Job.Window.End),
			strconv.Itoa(len(result.Output)),
			strconv.Itoa(clips),
			result.OutputPath,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Day", "Window", "Files", "Clips", "Output"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
	))
}
