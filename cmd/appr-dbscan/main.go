// Command appr-dbscan runs the approximate DBSCAN engine over a
// whitespace-separated point file and reports the resulting cluster
// labeling.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/appr-dbscan/internal/dbscan"
	"github.com/banshee-data/appr-dbscan/internal/dbscanconfig"
	"github.com/banshee-data/appr-dbscan/internal/dbscanio"
	"github.com/banshee-data/appr-dbscan/internal/dbscanviz"
)

type config struct {
	file          string
	epsilon       float64
	rho           float64
	minPts        int
	bitmapPath    string
	bmpWidth      int
	bmpHeight     int
	paletteSize   int
	bitmapPadding int
}

func main() {
	runID := uuid.New().String()
	log.SetPrefix(fmt.Sprintf("[%s] ", runID[:8]))

	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		printUsage()
		os.Exit(1)
	}

	log.Printf("starting: file=%s epsilon=%g rho=%g minPts=%d", cfg.file, cfg.epsilon, cfg.rho, cfg.minPts)
	start := time.Now()

	labels, err := dbscan.ClusterFromFile(cfg.file, cfg.epsilon, cfg.rho, cfg.minPts)
	if err != nil {
		log.Fatalf("clustering failed: %v", err)
	}

	elapsed := time.Since(start)
	log.Printf("done in %s: %d points, %d clusters", elapsed, labels.NumPoints(), labels.NumClusters())

	if cfg.bitmapPath != "" {
		if err := writeBitmap(cfg); err != nil {
			log.Fatalf("bitmap output failed: %v", err)
		}
		log.Printf("bitmap written to %s", cfg.bitmapPath)
	}
}

func parseArgs(args []string) (config, error) {
	defaults := loadDefaults()

	fs := flag.NewFlagSet("appr-dbscan", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	bitmap := fs.String("bitmap", "", "path to write a BMP visualization of the clustering result")
	width := fs.Int("bitmap-width", 800, "bitmap canvas width")
	height := fs.Int("bitmap-height", 800, "bitmap canvas height")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	positional := fs.Args()
	if len(positional) == 1 {
		// A bare file argument runs with the configured defaults
		// rather than forcing every invocation to repeat them.
		return config{
			file:          positional[0],
			epsilon:       defaults.GetEpsilon(),
			rho:           defaults.GetRho(),
			minPts:        defaults.GetMinPts(),
			bitmapPath:    *bitmap,
			bmpWidth:      *width,
			bmpHeight:     *height,
			paletteSize:   defaults.GetPaletteSize(),
			bitmapPadding: defaults.GetBitmapPadding(),
		}, nil
	}
	if len(positional) != 4 {
		return config{}, fmt.Errorf("appr-dbscan: expected 1 or 4 positional arguments, got %d", len(positional))
	}

	epsilon, err := parsePositiveFloat(positional[1], "epsilon")
	if err != nil {
		return config{}, err
	}
	rho, err := parseUnitFloat(positional[2], "rho")
	if err != nil {
		return config{}, err
	}
	minPts, err := parsePositiveInt(positional[3], "minPts")
	if err != nil {
		return config{}, err
	}

	return config{
		file:          positional[0],
		epsilon:       epsilon,
		rho:           rho,
		minPts:        minPts,
		bitmapPath:    *bitmap,
		bmpWidth:      *width,
		bmpHeight:     *height,
		paletteSize:   defaults.GetPaletteSize(),
		bitmapPadding: defaults.GetBitmapPadding(),
	}, nil
}

func loadDefaults() *dbscanconfig.DefaultsConfig {
	cfg, err := dbscanconfig.Load(dbscanconfig.DefaultConfigPath)
	if err != nil {
		return dbscanconfig.EmptyDefaultsConfig()
	}
	return cfg
}

func parsePositiveFloat(s, name string) (float64, error) {
	var v float64
	if _, err := fmt.Sscanf(s, "%g", &v); err != nil || v <= 0 {
		return 0, fmt.Errorf("appr-dbscan: %s must be a positive number, got %q", name, s)
	}
	return v, nil
}

func parseUnitFloat(s, name string) (float64, error) {
	var v float64
	if _, err := fmt.Sscanf(s, "%g", &v); err != nil || v <= 0 || v > 1 {
		return 0, fmt.Errorf("appr-dbscan: %s must be in (0, 1], got %q", name, s)
	}
	return v, nil
}

func parsePositiveInt(s, name string) (int, error) {
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil || v <= 0 {
		return 0, fmt.Errorf("appr-dbscan: %s must be a positive integer, got %q", name, s)
	}
	return v, nil
}

func writeBitmap(cfg config) error {
	dim, _, err := dbscanio.Preflight(cfg.file)
	if err != nil {
		return err
	}
	rows, err := dbscanio.Read(cfg.file, dim)
	if err != nil {
		return err
	}
	points := make([]dbscan.Point, len(rows))
	for i, row := range rows {
		var p dbscan.Point
		copy(p[:], row)
		points[i] = p
	}
	labels, err := dbscan.ClusterPoints(points, dim, cfg.epsilon, cfg.rho, cfg.minPts)
	if err != nil {
		return err
	}
	return dbscanviz.WriteBMP(cfg.bitmapPath, points, labels, cfg.bmpWidth, cfg.bmpHeight, cfg.paletteSize, cfg.bitmapPadding)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  appr-dbscan [-bitmap path] [-bitmap-width n] [-bitmap-height n] <data_file> [<epsilon> <rho> <min_pts>]")
	fmt.Fprintln(os.Stderr, "  with no epsilon/rho/min_pts, the values from config/dbscan.defaults.json are used")
	fmt.Fprintln(os.Stderr, "  data_file must contain one point per line, coordinates separated by whitespace")
	fmt.Fprintln(os.Stderr, "  epsilon must be a positive decimal number")
	fmt.Fprintln(os.Stderr, "  rho must be a decimal number in (0, 1]")
	fmt.Fprintln(os.Stderr, "  min_pts must be a positive integer")
}
