package audio

import (
	"context"
	"testing"
)

func TestBuildFilter_SpeedUpUsesAtempo(t *testing.T) {
	if got := buildFilter(1.5, 24000); got != "atempo=1.5" {
		t.Errorf("filter = %q", got)
	}
	if got := buildFilter(2.0, 24000); got != "atempo=2" {
		t.Errorf("filter = %q", got)
	}
}

func TestBuildFilter_SlowDownUsesAsetrate(t *testing.T) {
	if got := buildFilter(0.9, 24000); got != "asetrate=21600,aresample=24000" {
		t.Errorf("filter = %q", got)
	}
}

func TestAdjust_UnitySpeedIsPassthrough(t *testing.T) {
	a := &FFmpegAdjuster{binary: "definitely-not-ffmpeg"} // must not be invoked
	in := []byte("mp3-data")

	res := a.Adjust(context.Background(), in, 1.0)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Adjusted {
		t.Error("passthrough marked as adjusted")
	}
	if string(res.Data) != "mp3-data" {
		t.Errorf("data modified: %q", res.Data)
	}
}

func TestAdjust_FailureFallsBackToOriginal(t *testing.T) {
	a := &FFmpegAdjuster{binary: "definitely-not-ffmpeg"}
	in := []byte("original-audio")

	res := a.Adjust(context.Background(), in, 1.5)
	if res.Err == nil {
		t.Fatal("expected an error from a missing binary")
	}
	if res.Adjusted {
		t.Error("failed transform marked as adjusted")
	}
	if string(res.Data) != "original-audio" {
		t.Errorf("fallback did not return original audio: %q", res.Data)
	}
}
