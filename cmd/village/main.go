// Command village plays the animated village scene in a window or exports
// it as an animated GIF or a PNG sequence.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/gogpu/village"
	"github.com/gogpu/village/config"
	"github.com/gogpu/village/export"
	"github.com/gogpu/village/integration/ebview"
)

const hudSize = 14

var (
	logLevel    slog.Level
	configFlag  = flag.String("config", "", "YAML scene configuration file")
	editionFlag = flag.String("edition", "", "scene edition: 1-4 or classic, car, windmill, cow")
	windowFlag  = flag.Bool("window", false, "open the window even when -gif or -png is given")
	gifFlag     = flag.String("gif", "", "write an animated GIF instead of opening a window")
	pngFlag     = flag.String("png", "", "write numbered PNG frames into this directory")
	framesFlag  = flag.Int("frames", 0, "number of frames to export (default from config)")
	scaleFlag   = flag.Float64("scale", 0, "resize exported frames by this factor")
	hudFlag     = flag.Bool("hud", false, "draw the title and frame counter")
	ditherFlag  = flag.Bool("dither", false, "dither GIF frames")
	logFileFlag = flag.String("logfile", "", "write logs to this rotating file instead of stderr")
)

func init() {
	levelVar(flag.CommandLine, &logLevel)
}

func main() {
	flag.Parse()
	setupLogging()

	if err := run(); err != nil {
		log.Fatalf("village: %v", err)
	}
}

func setupLogging() {
	var w io.Writer = os.Stderr
	if *logFileFlag != "" {
		w = &lumberjack.Logger{
			Filename:   *logFileFlag,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		}
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(l)
	village.SetLogger(l)
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if cfg.HUD {
		face, err := hudFace()
		if err != nil {
			slog.Warn("HUD disabled", "err", err)
		} else {
			opts = append(opts, village.WithHUD(face))
		}
	}

	p, err := village.NewPlayer(opts...)
	if err != nil {
		return err
	}
	defer p.Close()

	if windowMode(*windowFlag, *gifFlag, *pngFlag) {
		title := cfg.Title
		if e := p.Renderer().Edition(); e != village.Classic {
			title += " - " + village.Title(e)
		}
		v, err := ebview.New(p, cfg.Interval(), title)
		if err != nil {
			return err
		}
		return v.Run()
	}
	return exportFrames(p, cfg)
}

// windowMode reports whether to play in a window rather than export.
func windowMode(window bool, gif, png string) bool {
	return window || (gif == "" && png == "")
}

// loadConfig reads the config file, then applies flags that were set
// explicitly on the command line.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return cfg, err
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "edition":
			cfg.Edition = *editionFlag
		case "frames":
			cfg.Frames = *framesFlag
		case "scale":
			cfg.Scale = *scaleFlag
		case "hud":
			cfg.HUD = *hudFlag
		}
	})
	return cfg, cfg.Validate()
}

func hudFace() (text.Face, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return src.Face(hudSize), nil
}

// sinks fans frames out to every export target.
type sinks []village.FrameSink

func (s sinks) WriteFrame(pm *gg.Pixmap) error {
	for _, sink := range s {
		if err := sink.WriteFrame(pm); err != nil {
			return err
		}
	}
	return nil
}

func exportFrames(p *village.Player, cfg config.Config) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		out     sinks
		gifFile *os.File
		gw      *export.GIFWriter
	)
	if *gifFlag != "" {
		gifFile, err = os.Create(*gifFlag)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := gifFile.Close(); err == nil {
				err = cerr
			}
		}()
		gw = export.NewGIFWriter(gifFile, cfg.Interval(),
			export.WithScale(cfg.Scale), export.WithDither(*ditherFlag))
		out = append(out, gw)
	}
	if *pngFlag != "" {
		pw, err := export.NewPNGWriter(*pngFlag, export.WithScale(cfg.Scale))
		if err != nil {
			return err
		}
		defer pw.Close()
		out = append(out, pw)
	}

	start := time.Now()
	if err := p.Play(ctx, cfg.Frames, out); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	frames := p.State().Frame

	if gw != nil {
		if err := gw.Close(); err != nil {
			return err
		}
		fi, err := gifFile.Stat()
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s: %s frames, %s\n", *gifFlag, humanize.Comma(int64(frames)), humanize.Bytes(uint64(fi.Size())))
	}
	if *pngFlag != "" {
		fmt.Printf("wrote %s frames to %s\n", humanize.Comma(int64(frames)), *pngFlag)
	}
	village.Logger().Info("export finished",
		"frames", frames, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}
