package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"

	"shapes-demo/internal/animation"
	"shapes-demo/internal/commands"
	"shapes-demo/internal/engineconfig"
	"shapes-demo/internal/env"
	"shapes-demo/internal/logger"
	"shapes-demo/internal/remote"
	"shapes-demo/internal/render/headless"
	"shapes-demo/internal/scene"
)

func main() {
	configPath := flag.String("config", engineconfig.EngineConfigPath, "config file (.yaml, .yml or .toml)")
	noWindow := flag.Bool("headless", false, "run the frame loop without a window")
	frames := flag.Uint64("frames", 0, "stop after this many frames (0 runs until closed)")
	watch := flag.Bool("watch", true, "reload the config file when it changes")
	flag.Parse()

	if err := run(*configPath, *noWindow, *frames, *watch); err != nil {
		fmt.Fprintln(os.Stderr, "shapes-demo:", err)
		os.Exit(1)
	}
}

func run(configPath string, noWindow bool, frames uint64, watch bool) error {
	loaded, envErr := env.Load(".env")

	cfg, err := engineconfig.Load(configPath)
	if err != nil {
		return err
	}
	if err := engineconfig.ApplyEnv(&cfg); err != nil {
		return err
	}

	lg, err := logger.New(logger.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return err
	}
	defer lg.Close()
	l := lg.Logger
	if envErr != nil {
		l.Warn("could not read .env", "err", envErr)
	} else if len(loaded) > 0 {
		l.Debug("loaded .env", "keys", loaded)
	}
	l.Info("starting", "config", configPath, "headless", noWindow, "seed", cfg.Scene.Seed)

	km, err := cfg.Keymap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := scene.NewRand(cfg.Scene.Seed)
	home := scene.DefaultCamera()
	home.Position = mgl64.Vec3(cfg.Camera.Position)
	home.Fovy = cfg.Camera.Fovy
	scn := scene.New(scene.Options{
		Camera:         &home,
		ParticleCount:  cfg.Scene.Particles,
		ParticleSpread: cfg.Scene.ParticleSpread,
	}, rng)
	scn.AnimationEnabled = cfg.Animation.Enabled

	reg := commands.NewRegistry()
	reg.Register(commands.ToggleAnimation, func() {
		scn.ToggleAnimation()
		l.Info("animation toggled", "enabled", scn.AnimationEnabled)
	})
	reg.Register(commands.ChangeColors, func() {
		scn.ChangeColors(rng)
		l.Info("colors changed", "colors", remote.StateOf(scn).Colors)
	})
	reg.Register(commands.ResetCamera, func() {
		scn.ResetCamera()
		l.Info("camera reset", "position", scn.Camera.Position)
	})

	queue := commands.NewQueue(64)
	var srv *remote.Server
	if cfg.Remote.Enabled {
		srv = remote.NewServer(queue, reg.Registered(), l)
		go func() {
			if err := srv.ListenAndServe(ctx, cfg.Remote.Addr); err != nil {
				l.Error("remote control stopped", "err", err)
			}
		}()
	}

	reloads := make(chan engineconfig.Config, 1)
	if watch {
		go func() {
			err := engineconfig.Watch(ctx, configPath, l, func(c engineconfig.Config) {
				select {
				case reloads <- c:
				default:
					l.Warn("config reload dropped, previous one still pending")
				}
			})
			if err != nil {
				l.Warn("config watch disabled", "err", err)
			}
		}()
	}

	var (
		sched    *animation.Scheduler
		source   animation.FrameSource
		onReload func(engineconfig.Config)
	)
	if noWindow {
		fps := cfg.Window.TargetFPS
		if fps <= 0 {
			fps = 60
		}
		sched = animation.New(scn, animation.NewClock(), headless.New(l, headless.DefaultEvery), l)
		tf := animation.NewTickerFrames(ctx, time.Second/time.Duration(fps), frames)
		defer tf.Stop()
		source = tf
		onReload = func(c engineconfig.Config) { applyLogLevel(l, c) }
	} else {
		w := openWindow(cfg, scn, km, reg, l)
		defer w.close()
		sched = w.scheduler
		source = limitFrames(w.window, frames)
		onReload = func(c engineconfig.Config) {
			applyLogLevel(l, c)
			w.reload(c)
		}
	}

	sched.BeforeTick(func() {
		select {
		case c := <-reloads:
			l.Info("config reloaded", "path", configPath)
			onReload(c)
		default:
		}
	})
	sched.BeforeTick(func() {
		if n := queue.Drain(reg); n > 0 {
			l.Debug("queued commands run", "count", n)
		}
	})
	if srv != nil {
		sched.AfterTick(func() { srv.Publish(remote.StateOf(scn)) })
	}

	if err := sched.Run(ctx, source); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func applyLogLevel(l *log.Logger, c engineconfig.Config) {
	if lvl, err := log.ParseLevel(c.Log.Level); err == nil {
		l.SetLevel(lvl)
	}
}

// countedFrames stops a frame source after limit frames.
type countedFrames struct {
	src   animation.FrameSource
	limit uint64
	n     uint64
}

func limitFrames(src animation.FrameSource, limit uint64) animation.FrameSource {
	if limit == 0 {
		return src
	}
	return &countedFrames{src: src, limit: limit}
}

func (f *countedFrames) Next() bool {
	if f.n >= f.limit {
		return false
	}
	f.n++
	return f.src.Next()
}
