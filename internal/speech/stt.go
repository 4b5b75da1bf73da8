package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	speechapi "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// ErrUnintelligible reports audio that reached the recognition service but
// produced no transcription. Distinct from transport failure so the caller
// can tell the user to try again rather than check the network.
var ErrUnintelligible = errors.New("speech was not recognized")

// Recognizer captures a short clip from the microphone and transcribes it.
type Recognizer interface {
	Listen(ctx context.Context) (string, error)
}

// CaptureFunc records audio for the given duration and returns a WAV clip.
type CaptureFunc func(ctx context.Context, d time.Duration) ([]byte, error)

// GoogleRecognizer transcribes captured audio with Google Cloud
// Speech-to-Text.
type GoogleRecognizer struct {
	client   *speechapi.Client
	language string
	duration time.Duration
	capture  CaptureFunc
	log      *zap.Logger
}

// NewGoogleRecognizer creates a Speech-to-Text client. credentialsFile may
// be empty to use application default credentials; capture may be nil to
// record with the platform's command-line recorder.
func NewGoogleRecognizer(ctx context.Context, credentialsFile, language string, capture CaptureFunc, log *zap.Logger) (*GoogleRecognizer, error) {
	if language == "" {
		language = "es-ES"
	}
	if capture == nil {
		capture = captureClip
	}
	if log == nil {
		log = zap.NewNop()
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := speechapi.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating speech-to-text client: %w", err)
	}
	return &GoogleRecognizer{
		client:   client,
		language: language,
		duration: 5 * time.Second,
		capture:  capture,
		log:      log,
	}, nil
}

// Listen records one clip and returns its transcription. The sentence
// buffer is never touched here; on any failure the caller keeps its state.
func (g *GoogleRecognizer) Listen(ctx context.Context) (string, error) {
	clip, err := g.capture(ctx, g.duration)
	if err != nil {
		return "", fmt.Errorf("capturing audio: %w", err)
	}
	g.log.Info("captured audio clip", zap.Int("bytes", len(clip)))

	// WAV is self-describing; encoding and sample rate come from the header.
	resp, err := g.client.Recognize(ctx, &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			LanguageCode: g.language,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: clip},
		},
	})
	if err != nil {
		return "", fmt.Errorf("recognition service: %w", err)
	}
	for _, result := range resp.Results {
		if len(result.Alternatives) > 0 && result.Alternatives[0].Transcript != "" {
			return result.Alternatives[0].Transcript, nil
		}
	}
	return "", ErrUnintelligible
}

func (g *GoogleRecognizer) Close() error {
	return g.client.Close()
}

// captureClip shells out to the platform recorder and reads back the WAV.
func captureClip(ctx context.Context, d time.Duration) ([]byte, error) {
	tmp, err := os.CreateTemp("", "habla-*.wav")
	if err != nil {
		return nil, err
	}
	path := tmp.Name()
	tmp.Close()
	defer os.Remove(path)

	secs := strconv.Itoa(int(d.Seconds()))
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.CommandContext(ctx, "arecord", "-q", "-f", "S16_LE", "-r", "16000", "-c", "1", "-d", secs, path)
	case "darwin":
		cmd = exec.CommandContext(ctx, "rec", "-q", "-r", "16000", "-c", "1", path, "trim", "0", secs)
	default:
		return nil, fmt.Errorf("no audio recorder for platform %q", runtime.GOOS)
	}
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("recording from microphone: %w", err)
	}
	return os.ReadFile(path)
}
