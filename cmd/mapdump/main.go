package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"worldmap/internal/terrain"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	width := flag.Int("width", 100, "map width in cells")
	height := flag.Int("height", 100, "map height in cells")
	seed := flag.Int64("seed", 0, "generation seed (0 = random)")
	workers := flag.Int("workers", 0, "noise fill workers (0 = NumCPU)")
	out := flag.String("out", "", "write the per-cell record dump to this file ('-' for stdout)")
	point := flag.String("point", "", "print the layer values at a single cell, as x,y")
	var overrides kvList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	values := map[string]string{
		"w":    strconv.Itoa(*width),
		"h":    strconv.Itoa(*height),
		"seed": strconv.FormatInt(*seed, 10),
	}
	if *workers > 0 {
		values["workers"] = strconv.Itoa(*workers)
	}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Fatalf("bad -set value %q, want key=value", kv)
		}
		values[parts[0]] = parts[1]
	}

	cfg := terrain.FromMap(values)
	m, err := terrain.Generate(cfg)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	fmt.Printf("Sea level altitude: %.2f\n", m.SeaLevel())
	fmt.Printf("Seed: %d\n", m.Seed())

	if *point != "" {
		x, y, err := parsePoint(*point)
		if err != nil {
			log.Fatalf("bad -point value %q: %v", *point, err)
		}
		info, err := m.PointInfo(x, y)
		if err != nil {
			log.Fatalf("point info: %v", err)
		}
		fmt.Printf("Height: %.2f\n", info.Elevation)
		fmt.Printf("Water Presence: %.0f%%\n", info.WaterPresence)
		for _, s := range terrain.Seasons() {
			fmt.Printf("%s: temp %.1f, light %.0fh\n", s, info.Temperature[s], info.Light[s])
		}
	}

	if *out != "" {
		if err := writeRecords(m, *out); err != nil {
			log.Fatalf("write records: %v", err)
		}
	}
}

func parsePoint(s string) (int, int, error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want x,y")
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// writeRecords dumps every cell in row-major order, one line per cell.
func writeRecords(m *terrain.Map, path string) error {
	var w *bufio.Writer
	if path == "-" {
		w = bufio.NewWriter(os.Stdout)
	} else {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = bufio.NewWriter(f)
	}

	for _, rec := range m.Export() {
		fmt.Fprintf(w, "%d,%d,Height:%.2f,Water:%.0f%%", rec.Row, rec.Col, rec.Elevation, rec.WaterPresence)
		for _, s := range terrain.Seasons() {
			fmt.Fprintf(w, ",%s Temp:%.1f", s, rec.Temperature[s])
		}
		for _, s := range terrain.Seasons() {
			fmt.Fprintf(w, ",%s Light:%.0f", s, rec.Light[s])
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}
