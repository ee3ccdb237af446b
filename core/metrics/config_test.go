package metrics

import "testing"

func TestConfigDefaults(t *testing.T) {
	var c Config
	c.SetDefaults()
	if c.PrometheusPort != ":9100" {
		t.Fatalf("expected default port, got %s", c.PrometheusPort)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestConfigValidateInflux(t *testing.T) {
	c := Config{InfluxEnabled: true}
	if err := c.Validate(); err == nil {
		t.Fatal("expected error for missing influx settings")
	}
	c.InfluxURL = "http://localhost:8086"
	c.InfluxBucket = "trials"
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestNopSink(t *testing.T) {
	var s NopSink
	if err := s.RecordTrial(TrialEvent{}); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordRun(RunEvent{}); err != nil {
		t.Fatal(err)
	}
	if err := s.RecordInstance(InstanceEvent{}); err != nil {
		t.Fatal(err)
	}
}
