// 程序入口：单次查询 CLI，读取数据集、执行一次坐标查询并打印结果后退出。
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"tzlookup/internal/config"
	"tzlookup/internal/engine"
	"tzlookup/internal/loader"
	"tzlookup/internal/logger"
)

func main() {
	_ = godotenv.Load(".env")

	mode := flag.String("mode", "at", "query procedure: at | at-land | unique | certain | lite")
	verbose := flag.Bool("v", false, "enable debug logging")
	dataDir := flag.String("data", "", "dataset directory (overrides TZ_DATA_DIR)")
	flag.Parse()

	if *verbose {
		os.Setenv("LOG_LEVEL", "debug")
	}
	l := logger.Setup()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: tzlookup [-mode at|at-land|unique|certain|lite] [-v] [-data DIR] <lon> <lat>")
		os.Exit(2)
	}
	lng, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid longitude:", args[0])
		os.Exit(2)
	}
	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid latitude:", args[1])
		os.Exit(2)
	}

	cfg := config.FromEnv()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	l.Debug("cli_config", "data_dir", cfg.DataDir, "in_memory", cfg.InMemory, "mode", *mode)

	ds, err := loader.Load(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load dataset:", err)
		os.Exit(1)
	}
	defer ds.Close()

	var finder engine.Finder
	if *mode == "lite" {
		finder = engine.NewLite(ds.Polys, ds.Shortcuts)
	} else {
		finder = engine.New(ds.Polys, ds.Shortcuts)
	}

	name, found, err := runQuery(finder, *mode, lng, lat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "query error:", err)
		os.Exit(1)
	}
	if !found {
		fmt.Println()
		return
	}
	fmt.Println(name)
}

func runQuery(finder engine.Finder, mode string, lng, lat float64) (string, bool, error) {
	switch mode {
	case "at", "lite":
		return finder.TimezoneAt(lng, lat)
	case "at-land":
		return finder.TimezoneAtLand(lng, lat)
	case "unique":
		return finder.UniqueTimezoneAt(lng, lat)
	case "certain":
		if full, ok := finder.(*engine.Engine); ok {
			return full.CertainTimezoneAt(lng, lat)
		}
		return finder.TimezoneAt(lng, lat)
	default:
		return "", false, fmt.Errorf("unknown mode %q", mode)
	}
}
