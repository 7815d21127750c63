package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"kdc/internal/buildpipeline"
	"kdc/internal/cache"
	"kdc/internal/driver"
	"kdc/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build <dir>",
	Short: "Compile every *.kd file under a directory",
	Long: `build compiles each source file under dir independently (this
language has no cross-file imports) using up to --jobs goroutines, and
caches successful type-checks on disk so unchanged files skip recompiling.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Int("jobs", 0, "max concurrent compiles (0 = GOMAXPROCS)")
	buildCmd.Flags().Bool("no-cache", false, "ignore and do not populate the on-disk compile cache")
	buildCmd.Flags().Bool("no-ui", false, "print plain progress instead of the interactive view")
}

func runBuild(cmd *cobra.Command, args []string) error {
	dir := args[0]
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	noUI, err := cmd.Flags().GetBool("no-ui")
	if err != nil {
		return err
	}

	var disk *cache.Disk
	if !noCache {
		disk, err = cache.Open(filepath.Join(dir, ".kdc-cache"))
		if err != nil {
			return fmt.Errorf("failed to open cache: %w", err)
		}
	}

	files, err := driver.ListKDFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to list %q: %w", dir, err)
	}
	if len(files) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no .kd files found under %s\n", dir)
		return nil
	}

	useUI := !noUI && isTerminal(os.Stdout)
	var results []driver.FileResult
	if useUI {
		results, err = runBuildWithUI(cmd.Context(), "kdc build", files, dir, jobs, disk)
	} else {
		results, err = driver.BuildDir(cmd.Context(), dir, jobs, disk, nil)
	}
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	failed := 0
	for _, r := range results {
		status := "ok"
		if r.Result.Aborted {
			status = "failed"
			failed++
		} else if r.CacheHit {
			status = "cached"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", status, r.Path)
	}
	if failed > 0 {
		os.Exit(1)
	}
	return nil
}

func runBuildWithUI(ctx context.Context, title string, files []string, dir string, jobs int, disk *cache.Disk) ([]driver.FileResult, error) {
	events := make(chan buildpipeline.Event, 256)
	type outcome struct {
		results []driver.FileResult
		err     error
	}
	outcomeCh := make(chan outcome, 1)

	go func() {
		results, err := driver.BuildDir(ctx, dir, jobs, disk, buildpipeline.ChannelSink{Ch: events})
		outcomeCh <- outcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		<-outcomeCh
		return nil, err
	}
	out := <-outcomeCh
	return out.results, out.err
}
