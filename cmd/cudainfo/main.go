// Copyright 2026 go-cuda contributors
// SPDX-License-Identifier: Apache-2.0

// Package main is the cudainfo command, an operational probe for the
// go-cuda binding. It enumerates CUDA devices, renders driver errors
// through the binding's error layer, and can poll devices while serving
// Prometheus metrics.
package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/NVIDIA/go-nvml/pkg/nvml"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/ArangoGutierrez/go-cuda/internal/info"
	"github.com/ArangoGutierrez/go-cuda/pkg/cuda"
	"github.com/ArangoGutierrez/go-cuda/pkg/metrics"
)

func main() {
	var debug bool
	var withNVML bool

	c := cli.NewApp()
	c.Name = "cudainfo"
	c.Usage = "probe CUDA devices through the go-cuda binding"
	c.Version = fmt.Sprintf("%s (commit %s)", info.Version(), info.GitCommit())
	c.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "enable debug logging",
			Destination: &debug,
			EnvVars:     []string{"CUDAINFO_DEBUG"},
		},
		&cli.BoolFlag{
			Name:        "nvml",
			Usage:       "also report NVML driver version and utilization",
			Destination: &withNVML,
			EnvVars:     []string{"CUDAINFO_NVML"},
		},
	}
	c.Before = func(ctx *cli.Context) error {
		if debug {
			log.SetLevel(log.DebugLevel)
		}
		return nil
	}
	c.Action = func(ctx *cli.Context) error {
		return runInfo(withNVML)
	}
	c.Commands = []*cli.Command{
		{
			Name:  "watch",
			Usage: "poll devices on an interval and serve Prometheus metrics",
			Flags: []cli.Flag{
				&cli.DurationFlag{
					Name:    "interval",
					Value:   10 * time.Second,
					Usage:   "polling interval",
					EnvVars: []string{"CUDAINFO_INTERVAL"},
				},
				&cli.StringFlag{
					Name:    "metrics-addr",
					Value:   ":9400",
					Usage:   "address to serve /metrics on",
					EnvVars: []string{"CUDAINFO_METRICS_ADDR"},
				},
			},
			Action: func(ctx *cli.Context) error {
				return runWatch(ctx.Duration("interval"), ctx.String("metrics-addr"))
			},
		},
	}

	if err := c.Run(os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runInfo(withNVML bool) error {
	if err := cuda.Init(); err != nil {
		return fmt.Errorf("initializing CUDA driver: %w", err)
	}

	major, minor, err := cuda.DriverVersion()
	if err != nil {
		return fmt.Errorf("querying driver version: %w", err)
	}
	fmt.Printf("CUDA driver version: %d.%d\n", major, minor)

	count, err := cuda.DeviceCount()
	if err != nil {
		return fmt.Errorf("counting devices: %w", err)
	}
	fmt.Printf("Devices: %d\n", count)

	for i := 0; i < count; i++ {
		dev, err := cuda.DeviceGet(i)
		if err != nil {
			log.WithField("ordinal", i).WithError(err).Warn("skipping device")
			continue
		}
		name, err := dev.Name()
		if err != nil {
			log.WithField("ordinal", i).WithError(err).Warn("skipping device")
			continue
		}
		mem, err := dev.TotalMem()
		if err != nil {
			log.WithField("ordinal", i).WithError(err).Warn("skipping device")
			continue
		}
		fmt.Printf("  #%d %s, %d MiB\n", i, name, mem>>20)
	}

	if withNVML {
		reportNVML()
	}
	return nil
}

// reportNVML adds the NVML view of the same hardware: kernel driver version
// and live utilization, which the CUDA driver API does not expose. NVML
// being unavailable is not an error for the probe.
func reportNVML() {
	if ret := nvml.Init(); ret != nvml.SUCCESS {
		log.WithField("status", nvml.ErrorString(ret)).Warn("NVML unavailable")
		return
	}
	defer func() {
		if ret := nvml.Shutdown(); ret != nvml.SUCCESS {
			log.WithField("status", nvml.ErrorString(ret)).Warn("failed to shut down NVML")
		}
	}()

	if version, ret := nvml.SystemGetDriverVersion(); ret == nvml.SUCCESS {
		fmt.Printf("Kernel driver version: %s\n", version)
	}

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		log.WithField("status", nvml.ErrorString(ret)).Warn("NVML device count failed")
		return
	}
	for i := 0; i < count; i++ {
		device, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			continue
		}
		if util, ret := device.GetUtilizationRates(); ret == nvml.SUCCESS {
			fmt.Printf("  #%d utilization: gpu %d%% mem %d%%\n", i, util.Gpu, util.Memory)
		}
	}
}

func runWatch(interval time.Duration, addr string) error {
	if err := cuda.Init(); err != nil {
		return fmt.Errorf("initializing CUDA driver: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		log.WithField("addr", addr).Info("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("metrics server failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	poll()
	for {
		select {
		case <-ticker.C:
			poll()
		case sig := <-sigCh:
			log.WithField("signal", sig.String()).Info("shutting down")
			return srv.Close()
		}
	}
}

func poll() {
	count, err := cuda.DeviceCount()
	if err != nil {
		recordDriverError(err)
		return
	}
	metrics.DevicesVisible.Set(float64(count))

	for i := 0; i < count; i++ {
		dev, err := cuda.DeviceGet(i)
		if err != nil {
			recordDriverError(err)
			continue
		}
		mem, err := dev.TotalMem()
		if err != nil {
			recordDriverError(err)
			continue
		}
		metrics.DeviceMemoryTotalBytes.WithLabelValues(strconv.Itoa(i)).Set(float64(mem))
	}
}

func recordDriverError(err error) {
	var kind cuda.Error
	if errors.As(err, &kind) {
		metrics.DriverErrorsTotal.WithLabelValues(strconv.FormatUint(uint64(kind.Code()), 10)).Inc()
	}
	log.WithError(err).Warn("driver call failed")
}
