// FILE: lixenwraith/colog/cmd/colog-bench/main.go
// Command colog-bench stresses a Logger with many concurrent producers
// submitting through the async backend and reports throughput; it does not
// count or report dropped records — grounded on the teacher's cmd/stress.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/lixenwraith/colog"
	"github.com/lixenwraith/colog/async"
)

const (
	totalBursts    = 100
	logsPerBurst   = 500
	maxMessageSize = 2000
	numWorkers     = 32
)

var levels = []colog.Level{
	colog.LevelDebug,
	colog.LevelInfo,
	colog.LevelWarn,
	colog.LevelError,
}

func generateRandomMessage(size int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 "
	var sb strings.Builder
	sb.Grow(size)
	for i := 0; i < size; i++ {
		sb.WriteByte(chars[rand.Intn(len(chars))])
	}
	return sb.String()
}

func logBurst(logger *colog.Logger, burstID int, dropped *atomic.Int64) {
	for i := 0; i < logsPerBurst; i++ {
		level := levels[rand.Intn(len(levels))]
		msg := generateRandomMessage(rand.Intn(maxMessageSize) + 10)
		fl := logger.WithFields(map[string]any{
			"wkr": burstID % numWorkers,
			"bst": burstID,
			"seq": i,
		})
		switch level {
		case colog.LevelDebug:
			fl.Debug(msg)
		case colog.LevelInfo:
			fl.Info(msg)
		case colog.LevelWarn:
			fl.Warn(msg)
		case colog.LevelError:
			fl.Error(msg)
		}
	}
}

func worker(logger *colog.Logger, burstChan <-chan int, wg *sync.WaitGroup, completed *atomic.Int64, dropped *atomic.Int64) {
	defer wg.Done()
	for burstID := range burstChan {
		logBurst(logger, burstID, dropped)
		done := completed.Add(1)
		if done%10 == 0 || done == totalBursts {
			fmt.Printf("\rProgress: %d/%d bursts completed", done, totalBursts)
		}
	}
}

func main() {
	fmt.Println("--- colog async backend stress test ---")

	logsDir := "./colog-bench-logs"
	_ = os.RemoveAll(logsDir)

	cfg := colog.DefaultConfig()
	cfg.EnableConsole = false
	cfg.EnableFile = true
	cfg.Directory = logsDir
	cfg.Name = "stress"
	cfg.Format = "text"
	cfg.Level = "debug"
	cfg.MaxSizeMB = 1

	logger, err := colog.NewLogger("stress", cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	var dropCount atomic.Int64
	backend := async.NewBackend()
	backend.Start(async.Config{
		QueueSize:     8192,
		FlushInterval: 50 * time.Millisecond,
		BatchSize:     256,
		DiscardOnFull: false,
		OnError: func(err error) {
			fmt.Fprintf(os.Stderr, "sink error: %v\n", err)
		},
	})
	logger.EnableAsync(backend)

	fmt.Printf("Logging to %s with %d workers, %d bursts, %d logs/burst.\n",
		logsDir, numWorkers, totalBursts, logsPerBurst)
	fmt.Println("Press Ctrl+C to stop early.")

	burstChan := make(chan int, numWorkers)
	var wg sync.WaitGroup
	var completed atomic.Int64

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	stopChan := make(chan struct{})
	go func() {
		<-sigChan
		fmt.Println("\n[signal] stopping burst generation")
		close(stopChan)
	}()

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(logger, burstChan, &wg, &completed, &dropCount)
	}

	start := time.Now()
loop:
	for i := 1; i <= totalBursts; i++ {
		select {
		case burstChan <- i:
		case <-stopChan:
			break loop
		}
	}
	close(burstChan)

	fmt.Println("\nWaiting for workers to finish...")
	wg.Wait()
	duration := time.Since(start)

	fmt.Printf("\n--- Finished ---\n")
	fmt.Printf("Completed %d/%d bursts in %v\n", completed.Load(), totalBursts, duration.Round(time.Millisecond))
	if completed.Load() > 0 && duration.Seconds() > 0 {
		rate := float64(completed.Load()*logsPerBurst) / duration.Seconds()
		fmt.Printf("Approximate logs/sec: %.2f\n", rate)
	}

	fmt.Println("Draining backend...")
	if !backend.WaitForDrain(10 * time.Second) {
		fmt.Fprintln(os.Stderr, "drain timed out, stopping anyway")
	}
	backend.Stop(10 * time.Second)

	fmt.Printf("Check log files in %q.\n", logsDir)
}
