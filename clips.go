package main

import (
	"fmt"
	"io"

	"github.com/automoto/popcorn-guy/systems/factory"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var clipsCmd = &cobra.Command{
	Use:   "clips",
	Short: "List the clip table",
	Long: `Shows every clip in the table after settings are applied, then the clips the
selector can ask for in the current mode that the table does not define.`,
	RunE: runClips,
}

func runClips(cmd *cobra.Command, args []string) error {
	mode, err := prepare(cmd)
	if err != nil {
		return err
	}
	// Missing clips are listed below, so the animator's own warning is not needed here.
	animator, err := factory.NewAnimator(mode, log.New(io.Discard))
	if err != nil {
		return err
	}
	registry := animator.Registry()
	selector := animator.Selector()

	ids := registry.IDs()
	maxIDLen := 4 // "Clip" header
	for _, id := range ids {
		if n := len(id.String()); n > maxIDLen {
			maxIDLen = n
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-*s  %6s  %8s  %5s  %s\n", maxIDLen, "Clip", "Frames", "Duration", "Start", "Sheet")
	for _, id := range ids {
		clip, _ := registry.Lookup(id)
		fmt.Fprintf(out, "  %-*s  %6d  %8.3f  %5d  %s\n", maxIDLen, id, clip.FrameCount, clip.FrameDuration, clip.StartingIndex, clip.Asset)
	}
	fmt.Fprintf(out, "\n%d clips, velocity epsilon %v\n\n", registry.Len(), selector.Policy().VelocityEpsilon)

	missing := registry.Missing(selector.Candidates()...)
	if len(missing) == 0 {
		fmt.Fprintf(out, "All %d clips the %s selector can pick are defined.\n", len(selector.Candidates()), mode)
		return nil
	}
	fmt.Fprintf(out, "Missing for %s, the previous clip keeps playing instead:\n", mode)
	for _, id := range missing {
		fmt.Fprintf(out, "  %s\n", id)
	}
	return nil
}
