package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	actorbuilder "github.com/KirkDiggler/drawsteel-importer/internal/builders/actor"
	"github.com/KirkDiggler/drawsteel-importer/internal/handlers/importer/v1alpha1"
	"github.com/KirkDiggler/drawsteel-importer/internal/orchestrators/importer"
	"github.com/KirkDiggler/drawsteel-importer/internal/pkg/idgen"
	actorrepo "github.com/KirkDiggler/drawsteel-importer/internal/repositories/actor"
)

var (
	maliceFile string
	outDir     string
	folder     string
	workers    int
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a stat block and print the result",
	Long: `Parse one stat block file ("-" reads stdin) and print the parsed
header, features, abilities, notices and the actor as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

var importCmd = &cobra.Command{
	Use:   "import [files...]",
	Short: "Convert stat block files into actor documents",
	Long: `Convert each stat block file into an actor JSON document written to the
output directory as <name>.json. Files are processed concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

func init() {
	parseCmd.Flags().StringVar(&maliceFile, "malice", "", "malice ability text for the same monster")

	importCmd.Flags().StringVar(&outDir, "out", ".", "output directory")
	importCmd.Flags().StringVar(&folder, "folder", "", "actor folder (defaults to IMPORTER_FOLDER)")
	importCmd.Flags().IntVar(&workers, "workers", 4, "files converted at once")
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	text, err := readInput(args[0], cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	var maliceText string
	if maliceFile != "" {
		if maliceText, err = readInput(maliceFile, cmd.InOrStdin()); err != nil {
			return fmt.Errorf("failed to read %s: %w", maliceFile, err)
		}
	}

	svc, err := newImporter(cfg, actorrepo.NewInMemory(idgen.NewRandom()))
	if err != nil {
		return err
	}

	out, err := svc.ParseMonster(ctx, &importer.ParseMonsterInput{Text: text, MaliceText: maliceText})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(&v1alpha1.ParseMonsterResponse{
		Header:    out.Header,
		Features:  out.Features,
		Abilities: out.Abilities,
		Malice:    out.Malice,
		Notices:   out.Notices,
		Actor:     out.Actor,
	})
}

func runImport(cmd *cobra.Command, args []string) error {
	if workers < 1 {
		return fmt.Errorf("--workers must be at least 1")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	svc, err := newImporter(cfg, actorrepo.NewInMemory(idgen.NewUUID("actor")))
	if err != nil {
		return err
	}

	var (
		mu      sync.Mutex
		written []string
	)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)

	for _, path := range args {
		g.Go(func() error {
			text, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			out, err := svc.ImportMonster(ctx, &importer.ImportMonsterInput{Text: string(text), Folder: folder})
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			data, err := json.MarshalIndent(out.Actor, "", "  ")
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			name := actorbuilder.DSID(out.Actor.Name)
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			}
			dest := filepath.Join(outDir, name+".json")
			if err := os.WriteFile(dest, data, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", dest, err)
			}

			slog.InfoContext(ctx, "wrote actor", "source", path, "dest", dest, "notices", len(out.Notices))

			mu.Lock()
			written = append(written, dest)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d stat blocks into %s\n", len(written), outDir)
	return nil
}
