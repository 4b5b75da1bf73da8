// Package speech wires the sentence buffer to the outside world: synthesis
// and playback of composed sentences, and dictation back into text.
package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// Speaker reads a sentence aloud. The call blocks until playback finishes;
// the app is one-action-at-a-time by design.
type Speaker interface {
	Speak(ctx context.Context, text string) error
}

// Synthesizer turns text into MP3 audio with Google Cloud Text-to-Speech.
type Synthesizer struct {
	client   *texttospeech.Client
	language string
	voice    string
	rate     float64
}

// NewSynthesizer creates a Text-to-Speech client. credentialsFile may be
// empty to use application default credentials.
func NewSynthesizer(ctx context.Context, credentialsFile, language, voice string, rate float64) (*Synthesizer, error) {
	if language == "" {
		language = "es-ES"
	}
	if rate <= 0 {
		rate = 1.0
	}
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := texttospeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating text-to-speech client: %w", err)
	}
	return &Synthesizer{client: client, language: language, voice: voice, rate: rate}, nil
}

// Synthesize returns MP3 bytes for text.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if text == "" {
		return nil, errors.New("text is empty")
	}
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: s.language,
			Name:         s.voice,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  s.rate,
		},
	}
	resp, err := s.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("synthesizing speech: %w", err)
	}
	return resp.AudioContent, nil
}

func (s *Synthesizer) Close() error {
	return s.client.Close()
}

// GoogleSpeaker synthesizes with Google TTS and plays the result through a
// local audio player.
type GoogleSpeaker struct {
	synth *Synthesizer
	play  func(path string) error
	log   *zap.Logger
}

func NewGoogleSpeaker(synth *Synthesizer, log *zap.Logger) *GoogleSpeaker {
	if log == nil {
		log = zap.NewNop()
	}
	return &GoogleSpeaker{synth: synth, play: playFile, log: log}
}

func (g *GoogleSpeaker) Speak(ctx context.Context, text string) error {
	audio, err := g.synth.Synthesize(ctx, text)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp("", "habla-*.mp3")
	if err != nil {
		return fmt.Errorf("writing audio: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)
	if _, err := tmp.Write(audio); err != nil {
		tmp.Close()
		return fmt.Errorf("writing audio: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing audio: %w", err)
	}
	g.log.Info("speaking sentence", zap.Int("audio_bytes", len(audio)))
	return g.play(path)
}

// playFile hands the audio file to whatever player the platform has.
func playFile(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("mpg123", "-q", path)
	case "darwin":
		cmd = exec.Command("afplay", path)
	case "windows":
		cmd = exec.Command("cmd", "/C", "start", "/WAIT", "", path)
	default:
		return fmt.Errorf("unsupported platform %q", runtime.GOOS)
	}
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("playing audio: %w", err)
	}
	return nil
}
