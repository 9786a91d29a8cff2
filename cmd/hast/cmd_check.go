package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/dhamidi/hast/workspace"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newCheckCmd() *cobra.Command {
	var watch bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Parse HTML files and report every syntax error",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				if len(args) != 1 {
					return fmt.Errorf("--watch takes a single directory argument")
				}
				return runWatch(args[0], verbose)
			}
			return runCheck(args)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "keep running and re-check files as they change")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log watcher activity")

	return cmd
}

func runCheck(paths []string) error {
	ws := workspace.New(".")

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		if !info.IsDir() {
			if !workspace.IsHTMLFile(path) {
				return fmt.Errorf("unsupported file type: %s (expected .html or .htm)", filepath.Ext(path))
			}
			if err := ws.ScanFile(path); err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			continue
		}

		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if strings.HasPrefix(info.Name(), ".") && p != path {
					return filepath.SkipDir
				}
				return nil
			}
			if workspace.IsHTMLFile(p) {
				ws.ScanFile(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}
	}

	diags := ws.Diagnostics()
	for _, d := range diags {
		fmt.Printf("%s: %v\n", d.Path, d.Err)
	}
	if len(diags) > 0 {
		fmt.Printf("\n%d of %d files failed\n", len(diags), len(ws.Files()))
		os.Exit(1)
	}
	return nil
}

func runWatch(root string, verbose bool) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("--watch takes a directory, not a file")
	}

	verbosity := 0
	if verbose {
		verbosity = 1
	}
	commonlog.Configure(verbosity, nil)
	log := commonlog.GetLogger("hast.watch")

	ws := workspace.New(root)
	if err := ws.ScanAll(); err != nil {
		return fmt.Errorf("scan %s: %w", root, err)
	}

	diags := ws.Diagnostics()
	for _, d := range diags {
		fmt.Printf("%s: %v\n", d.Path, d.Err)
	}
	fmt.Printf("checked %d files, %d failing; watching %s\n", len(ws.Files()), len(diags), root)

	watcher, err := workspace.NewFileWatcher(ws, func(path string) {
		log.Infof("rechecking %s", path)
		f := ws.GetFile(path)
		switch {
		case f == nil:
			fmt.Printf("%s: removed\n", path)
		case f.ParseErr != nil:
			fmt.Printf("%s: %v\n", f.Path, f.ParseErr)
		default:
			fmt.Printf("%s: ok\n", path)
		}
	})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	return nil
}
