package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/gridsentry/genset-monitoring/internal/api/metrics"
	"github.com/gridsentry/genset-monitoring/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes pushed telemetry samples to a fixed set of workers using
// consistent hashing on the station code, guaranteeing per-station ordering.
type Dispatcher struct {
	workers []chan ports.ReadingInput
	service ports.TelemetryService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.TelemetryService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ReadingInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ReadingInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a sample to the worker responsible for its station.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(in ports.ReadingInput) {
	idx := d.shardIndex(in.StationCode)
	d.workers[idx] <- in
	metrics.IngestQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a station code deterministically to a worker index.
func (d *Dispatcher) shardIndex(stationCode string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(stationCode))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ReadingInput) {
	workerID := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			metrics.IngestQueueDepth.WithLabelValues(workerID).Set(float64(len(ch)))
			if err := d.service.Record(ctx, in); err != nil {
				d.log.Error().Err(err).
					Str("station", in.StationCode).
					Int("worker_id", id).
					Msg("reading processing failed")
			}
		}
	}
}
