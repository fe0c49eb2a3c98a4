package audio

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// gTTS serves 24 kHz MP3s; used when probing the real rate fails.
const fallbackSampleRate = 24000

// Result is the outcome of a speed adjustment. Err is non-nil when the
// transform failed and Data carries the original, unmodified audio — the
// feature is best-effort and must never kill the request.
type Result struct {
	Data     []byte
	Adjusted bool
	Err      error
}

type Adjuster interface {
	Adjust(ctx context.Context, mp3 []byte, speed float64) Result
}

// FFmpegAdjuster rewrites MP3 playback speed by piping the stream
// through ffmpeg.
type FFmpegAdjuster struct {
	binary string
}

func NewFFmpegAdjuster() *FFmpegAdjuster {
	return &FFmpegAdjuster{binary: "ffmpeg"}
}

// Adjust changes the playback speed of an MP3 stream.
//
// Speeding up uses atempo, which compresses time while preserving pitch and
// the original sample rate. Slowing down reinterprets the samples at a
// proportionally lower rate and then restates the rate, trading pitch for
// simplicity. Both paths re-encode to MP3.
func (a *FFmpegAdjuster) Adjust(ctx context.Context, mp3 []byte, speed float64) Result {
	if speed == 1.0 {
		return Result{Data: mp3}
	}

	rate, err := SampleRate(ctx, mp3)
	if err != nil {
		rate = fallbackSampleRate
	}

	out, err := a.run(ctx, mp3, buildFilter(speed, rate))
	if err != nil {
		return Result{Data: mp3, Err: err}
	}
	if len(out) == 0 {
		return Result{Data: mp3, Err: fmt.Errorf("ffmpeg produced empty output")}
	}

	return Result{Data: out, Adjusted: true}
}

func (a *FFmpegAdjuster) run(ctx context.Context, in []byte, filter string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, a.binary,
		"-hide_banner", "-loglevel", "error",
		"-i", "pipe:0",
		"-filter:a", filter,
		"-f", "mp3",
		"pipe:1",
	)
	cmd.Stdin = bytes.NewReader(in)

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}

func buildFilter(speed float64, sampleRate int) string {
	if speed > 1.0 {
		return fmt.Sprintf("atempo=%g", speed)
	}
	return fmt.Sprintf("asetrate=%d,aresample=%d", int(float64(sampleRate)*speed), sampleRate)
}
