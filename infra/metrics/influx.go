package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/kilianp07/shiftcheck/core/metrics"
	"github.com/kilianp07/shiftcheck/infra/logger"
)

// InfluxSink writes harness events to an InfluxDB instance using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	base := strings.TrimSuffix(url, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback pings the InfluxDB instance and returns a NopSink
// if the health check fails.
func NewInfluxSinkWithFallback(cfg coremetrics.Config) Sink {
	sink := NewInfluxSink(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordTrial writes one point per trial.
func (s *InfluxSink) RecordTrial(ev coremetrics.TrialEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("shift_trial").
		AddTag("run_id", ev.RunID).
		AddTag("outcome", string(ev.Outcome)).
		AddTag("reference", ev.Reference).
		AddTag("candidate", ev.Candidate).
		AddField("trial", ev.Trial).
		AddField("ref_shifts", ev.RefShifts).
		AddField("cand_shifts", ev.CandShifts).
		AddField("ref_ms", round3(ev.RefTime.Seconds()*1000)).
		AddField("cand_ms", round3(ev.CandTime.Seconds()*1000)).
		AddField("speedup", ev.Speedup).
		AddField("ref_nodes", ev.RefNodes).
		AddField("cand_nodes", ev.CandNodes).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordRun writes the run summary.
func (s *InfluxSink) RecordRun(ev coremetrics.RunEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("shift_run").
		AddTag("run_id", ev.RunID).
		AddTag("mismatch", strconv.FormatBool(ev.Mismatch)).
		AddField("trials", ev.Trials).
		AddField("agreed", ev.Agreed).
		AddField("timed_out", ev.TimedOut).
		AddField("mean_speedup", round3(ev.MeanSpeedup)).
		AddField("duration_ms", round3(ev.Duration.Seconds()*1000)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordInstance writes the size of a generated instance.
func (s *InfluxSink) RecordInstance(ev coremetrics.InstanceEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("shift_instance").
		AddField("units", ev.Units).
		AddField("availability", ev.Total).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() {
	s.client.Close()
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
