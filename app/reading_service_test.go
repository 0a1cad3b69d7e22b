package app

import (
	"testing"

	"hexcast/internal/casting"
	"hexcast/internal/fusion"
	"hexcast/internal/signal"
)

func newTestServices(t *testing.T) (*ReadingService, *SignalService) {
	t.Helper()
	engine, err := fusion.NewEngine(nil)
	if err != nil {
		t.Fatalf("engine setup failed: %v", err)
	}
	reading := NewReadingService(engine, fusion.ProfileClassic, casting.MethodCoin)
	signals := NewSignalService(signal.NewEvaluator(signal.DefaultDefinitions()))
	return reading, signals
}

func seedPtr(v uint32) *uint32 { return &v }

func TestNewReading_Replayable(t *testing.T) {
	service, _ := newTestServices(t)
	req := ReadingRequest{Seed: seedPtr(42)}

	first, err := service.NewReading(req)
	if err != nil {
		t.Fatalf("NewReading failed: %v", err)
	}
	second, err := service.NewReading(req)
	if err != nil {
		t.Fatalf("NewReading failed: %v", err)
	}

	if first.Seed != 42 || second.Seed != 42 {
		t.Errorf("seeds = %d, %d, want 42", first.Seed, second.Seed)
	}
	if first.Primary != second.Primary || first.Relating != second.Relating ||
		first.Mutual != second.Mutual {
		t.Error("identical seed produced different hexagrams")
	}
	if first.Fingerprint != second.Fingerprint {
		t.Error("replays must share a fingerprint")
	}
	if first.ID == second.ID {
		t.Error("each reading must get a fresh ID")
	}
}

func TestNewReading_SeedSurfacedWithoutInput(t *testing.T) {
	service, _ := newTestServices(t)
	reading, err := service.NewReading(ReadingRequest{})
	if err != nil {
		t.Fatalf("NewReading failed: %v", err)
	}
	if reading.Seed == 0 {
		t.Error("resolved seed must be surfaced and non-zero")
	}

	// Replaying the surfaced seed reproduces the run exactly.
	replay, err := service.NewReading(ReadingRequest{Seed: seedPtr(reading.Seed)})
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if replay.Primary != reading.Primary || replay.Relating != reading.Relating {
		t.Error("replay with surfaced seed diverged")
	}
}

func TestNewReading_TextSeed(t *testing.T) {
	service, _ := newTestServices(t)
	a, err := service.NewReading(ReadingRequest{SeedText: "should I take the offer"})
	if err != nil {
		t.Fatalf("NewReading failed: %v", err)
	}
	b, err := service.NewReading(ReadingRequest{SeedText: "should I take the offer"})
	if err != nil {
		t.Fatalf("NewReading failed: %v", err)
	}
	if a.Seed != b.Seed || a.Primary != b.Primary {
		t.Error("identical text seed must reproduce the reading")
	}
}

func TestNewReading_UnknownMethod(t *testing.T) {
	service, _ := newTestServices(t)
	if _, err := service.NewReading(ReadingRequest{Method: "chicken-bones"}); err == nil {
		t.Error("expected error for unknown method")
	}
}

func TestNewReading_DefaultsApplied(t *testing.T) {
	service, _ := newTestServices(t)
	reading, err := service.NewReading(ReadingRequest{Seed: seedPtr(7)})
	if err != nil {
		t.Fatalf("NewReading failed: %v", err)
	}
	if reading.Method != "coin" {
		t.Errorf("method = %q, want coin", reading.Method)
	}
	if reading.Profile != fusion.ProfileClassic {
		t.Errorf("profile = %q, want classic", reading.Profile)
	}
	if reading.Confidence <= 0 || reading.Confidence > 1 {
		t.Errorf("confidence = %f, want (0,1]", reading.Confidence)
	}
}

func TestEvaluateAll(t *testing.T) {
	_, service := newTestServices(t)
	report := service.EvaluateAll([]signal.Series{
		{ID: "progress", Values: []float64{0.2, 0.35, 0.5, 0.62, 0.71}},
		{ID: "unmapped", Values: []float64{1, 2, 3}},
	})

	if len(report.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(report.Results))
	}
	if report.Results[0].Signal != signal.SignalPositive {
		t.Errorf("progress signal = %s, want positive", report.Results[0].Signal)
	}
	if report.Results[1].Confidence != 0 {
		t.Errorf("unmapped confidence = %f, want 0", report.Results[1].Confidence)
	}
	if report.ID.String() == "" {
		t.Error("report must carry an ID")
	}
}
