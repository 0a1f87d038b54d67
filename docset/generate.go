package docset

import (
	"context"
	"io"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/uedocset/uedocset"
	"github.com/uedocset/uedocset/fs"
)

// flavorConfig captures the per-flavor layout of the vendor documentation.
type flavorConfig struct {
	docsetName string
	label      string
	apiPath    string // relative to the Documents root
	online     string
	indexPath  string
}

var flavorConfigs = map[uedocset.Flavor]flavorConfig{
	uedocset.FlavorCPP: {
		docsetName: "UnrealEngineCpp.docset",
		label:      "Unreal Engine C++ Docset",
		apiPath:    "en-US/API",
		online:     "https://docs.unrealengine.com/en-US/API",
		indexPath:  "en-US/API/index.html",
	},
	uedocset.FlavorBlueprint: {
		docsetName: "UnrealEngineBlueprint.docset",
		label:      "Unreal Engine Blueprint Docset",
		apiPath:    "en-US/BlueprintAPI",
		online:     "https://docs.unrealengine.com/en-US/BlueprintAPI",
		indexPath:  "en-US/BlueprintAPI/index.html",
	},
}

// Generator assembles a complete docset from a documentation archive.
type Generator struct {
	// Archive unpacks the input archive into the Documents directory.
	Archive uedocset.ArchiveExtractor

	// Processors maps each flavor to its page processor.
	Processors map[uedocset.Flavor]uedocset.PageProcessor

	// Indexer persists collected entries into the search index.
	Indexer uedocset.EntryIndexer

	// Manifests writes the Info.plist manifest.
	Manifests uedocset.ManifestWriter

	// Workers caps concurrent page processing. Zero means GOMAXPROCS.
	Workers int

	// Logger receives progress logs. Nil disables logging.
	Logger *slog.Logger
}

// Generate builds the docset for archivePath under outputDir. The flavor is
// inferred from the archive file name. The manifest is written last: a
// failed run never leaves a docset claiming success.
func (g *Generator) Generate(ctx context.Context, archivePath, outputDir string) error {
	flavor, err := uedocset.FlavorFromArchive(archivePath)
	if err != nil {
		return err
	}

	cfg := flavorConfigs[flavor]
	pages, ok := g.Processors[flavor]
	if !ok {
		return uedocset.Errorf(uedocset.EUNSUPPORTED, "no page processor registered for flavor %q", flavor)
	}

	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
	}
	logger = logger.With("run", uuid.New().String(), "flavor", string(flavor))

	layout := fs.NewLayout(outputDir, cfg.docsetName)
	if err := layout.Create(); err != nil {
		return err
	}

	logger.Info("extracting archive", "archive", archivePath, "documents", layout.Documents)
	if err := g.Archive.Extract(ctx, archivePath, layout.Documents); err != nil {
		return err
	}

	apiDir := filepath.Join(layout.Documents, filepath.FromSlash(cfg.apiPath))

	if err := AppendViewerCSS(apiDir); err != nil {
		return err
	}

	logger.Info("processing documentation tree", "dir", apiDir)
	proc := &Processor{Pages: pages, Workers: g.Workers, Logger: logger}
	result, err := proc.Process(ctx, apiDir)
	if err != nil {
		return err
	}
	if err := result.Err(); err != nil {
		return err
	}

	logger.Info("writing search index", "entries", result.Entries.Len())
	if err := g.Indexer.IndexEntries(ctx, layout.IndexPath(), layout.Documents, result.Entries.Sorted()); err != nil {
		return err
	}

	manifest := &uedocset.Manifest{
		BundleIdentifier:  cfg.docsetName,
		BundleName:        cfg.label,
		DeclaredInStyle:   "originalName",
		FallbackURL:       cfg.online,
		Family:            "python",
		PlatformFamily:    "Unreal Engine",
		DashDocset:        true,
		JavaScriptEnabled: true,
		IndexFilePath:     cfg.indexPath,
	}
	if err := g.Manifests.WriteManifest(layout.ManifestPath(), manifest); err != nil {
		return err
	}

	logger.Info("docset generated", "path", layout.Root)
	return nil
}
