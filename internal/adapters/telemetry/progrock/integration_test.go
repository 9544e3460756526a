package progrock_test

import (
	"context"
	"testing"

	"go.trai.ch/cuv/internal/adapters/telemetry/progrock"
	"go.trai.ch/cuv/internal/core/domain"
	"go.trai.ch/cuv/internal/tui"
)

func TestRecorder_Integration(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	_, vertex := recorder.Record(ctx, "scan M.cppm")

	if _, err := vertex.Stdout().Write([]byte("{\"rules\":[]}\n")); err != nil {
		t.Errorf("failed to write to stdout: %v", err)
	}
	if _, err := vertex.Stderr().Write([]byte("warning: unused flag\n")); err != nil {
		t.Errorf("failed to write to stderr: %v", err)
	}

	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Cached()
	vertex.Complete(nil)

	if err := recorder.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}

func TestRecorder_StreamsToFeed(t *testing.T) {
	feed := tui.NewFeed()
	feed.Open()
	recorder := progrock.NewRecorder(feed)

	_, vertex := recorder.Record(context.Background(), "scan main.cpp")
	vertex.Complete(nil)
	if err := recorder.Close(); err != nil {
		t.Fatalf("failed to close recorder: %v", err)
	}

	completed := false
	for {
		update, err := feed.Read()
		if err != nil {
			break
		}
		for _, v := range update.Vertexes {
			if v.Name == "scan main.cpp" && v.Completed != nil {
				completed = true
			}
		}
	}
	if !completed {
		t.Error("expected a completed vertex for scan main.cpp")
	}
}
