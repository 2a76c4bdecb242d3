package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/wbrown/imager"
	"github.com/wbrown/imager/imageutil"
)

func printFilters() {
	for _, name := range imager.Names() {
		fmt.Printf("  %-14s %s\n", name, imager.Usage(name))
	}
}

func main() {
	inputFile := flag.String("input", "",
		"Path to the input image file (required)")
	outputFile := flag.String("output", "",
		"Path to save the filtered image (format from extension)")
	filters := flag.String("filters", "",
		"Comma-separated filter pipeline, e.g. rotate-right,pixellate=8,sepia")
	sheetFile := flag.String("sheet", "",
		"Path to save a contact sheet with one tile per filter")
	targetWidth := flag.Int("width", 0,
		"Scale the input down to this width before filtering, 0 to keep")
	tileSize := flag.Int("tile", 160,
		"Contact sheet tile size in pixels")
	columns := flag.Int("columns", 4,
		"Contact sheet tiles per row")
	maxHistory := flag.Int("history", imager.DefaultMaxHistory,
		"Number of edits kept for undo")
	undo := flag.Int("undo", 0,
		"Undo this many filters from the end of the pipeline")
	list := flag.Bool("list", false,
		"List available filters and exit")
	verbose := flag.Bool("v", false,
		"Log debug output to stderr")
	flag.Parse()

	if *list {
		printFilters()
		return
	}

	if *verbose {
		imager.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Validate required flags
	if *inputFile == "" {
		fmt.Println("Please provide the image using the -input flag")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *outputFile == "" && *sheetFile == "" {
		fmt.Println("Please provide -output, -sheet, or both")
		flag.PrintDefaults()
		os.Exit(2)
	}

	pipeline, err := imager.ParsePipeline(*filters)
	if err != nil {
		fmt.Printf("Error parsing filters: %v\n", err)
		fmt.Println("Available filters:")
		printFilters()
		os.Exit(1)
	}

	begin := time.Now()
	img, err := imageutil.LoadImage(*inputFile)
	if err != nil {
		fmt.Printf("Error loading image: %v\n", err)
		os.Exit(1)
	}
	img = imageutil.ScaleToWidth(img, *targetWidth, imageutil.InterpolationArea)
	fmt.Printf("Loaded %s: %dx%d\n", *inputFile, img.Width(), img.Height())

	if *sheetFile != "" {
		sheet, err := imager.ContactSheet(img, pipeline,
			imager.WithTileSize(*tileSize, *tileSize),
			imager.WithColumns(*columns))
		if err != nil {
			fmt.Printf("Error rendering contact sheet: %v\n", err)
			os.Exit(1)
		}
		if err := imageutil.SaveImage(sheet.RGBA, *sheetFile); err != nil {
			fmt.Printf("Error writing contact sheet: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Contact sheet written to %s (%dx%d)\n",
			*sheetFile, sheet.Width(), sheet.Height())
	}

	if *outputFile == "" {
		return
	}

	editor := imager.NewEditor(img, imager.WithMaxHistory(*maxHistory))
	if err := editor.ApplyAll(pipeline); err != nil {
		fmt.Printf("Error applying filters: %v\n", err)
		os.Exit(1)
	}
	for i := 0; i < *undo; i++ {
		if err := editor.Undo(); err != nil {
			fmt.Printf("Undo stopped after %d steps: %v\n", i, err)
			break
		}
	}

	result := editor.Current()
	if err := imageutil.SaveRaster(result, *outputFile); err != nil {
		fmt.Printf("Error writing image: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, len(pipeline))
	for i, f := range pipeline {
		names[i] = f.Name()
	}
	fmt.Printf("Applied: %s\n", strings.Join(names, ", "))
	fmt.Printf("Output written to %s (%dx%d)\n",
		*outputFile, result.Width(), result.Height())
	fmt.Printf("Computation time: %v\n", time.Since(begin))
}
