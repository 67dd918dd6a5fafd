package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	gspeech "cloud.google.com/go/speech/apiv1"
	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
	"google.golang.org/api/option"

	"github.com/taiwoajasa245/divine-answers/pkg/logger"
)

var ErrNoSpeech = errors.New("no speech recognized")

type GoogleConfig struct {
	// AudioPath is the recorded clip to transcribe (wav, flac, ogg, mp3).
	AudioPath    string
	LanguageCode string
	// Endpoint overrides the API host, e.g. a regional endpoint.
	Endpoint string
}

type recognizeFunc func(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error)

// GoogleRecognizer transcribes one recorded utterance with Cloud
// Speech-to-Text synchronous recognition. Only the final, top alternative
// is used.
type GoogleRecognizer struct {
	cfg       GoogleConfig
	log       *logger.Logger
	recognize recognizeFunc
	close     func() error
}

func NewGoogleRecognizer(ctx context.Context, cfg GoogleConfig, log *logger.Logger) (*GoogleRecognizer, error) {
	if log == nil {
		log = logger.Nop()
	}
	var opts []option.ClientOption
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	c, err := gspeech.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("speech client: %w", err)
	}

	return &GoogleRecognizer{
		cfg: cfg,
		log: log.With("service", "gcp.Speech"),
		recognize: func(ctx context.Context, req *speechpb.RecognizeRequest) (*speechpb.RecognizeResponse, error) {
			return c.Recognize(ctx, req)
		},
		close: c.Close,
	}, nil
}

func (g *GoogleRecognizer) Close() error {
	if g == nil || g.close == nil {
		return nil
	}
	return g.close()
}

func (g *GoogleRecognizer) Recognize(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	audio, err := os.ReadFile(g.cfg.AudioPath)
	if err != nil {
		return "", fmt.Errorf("failed to read audio: %w", err)
	}
	if len(audio) == 0 {
		return "", ErrNoSpeech
	}

	req := &speechpb.RecognizeRequest{
		Config: recognitionConfig(g.cfg),
		Audio:  &speechpb.RecognitionAudio{AudioSource: &speechpb.RecognitionAudio_Content{Content: audio}},
	}

	resp, err := g.recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognize: %w", err)
	}

	transcript := firstTranscript(resp)
	if transcript == "" {
		return "", ErrNoSpeech
	}
	g.log.Debug("speech recognized", "chars", len(transcript))
	return transcript, nil
}

func recognitionConfig(cfg GoogleConfig) *speechpb.RecognitionConfig {
	lang := cfg.LanguageCode
	if lang == "" {
		lang = "en-US"
	}
	return &speechpb.RecognitionConfig{
		Encoding:                   encodingFor(cfg.AudioPath),
		LanguageCode:               lang,
		MaxAlternatives:            1,
		EnableAutomaticPunctuation: true,
	}
}

// encodingFor leaves self-describing containers to the API.
func encodingFor(path string) speechpb.RecognitionConfig_AudioEncoding {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ogg", ".opus":
		return speechpb.RecognitionConfig_OGG_OPUS
	case ".mp3":
		return speechpb.RecognitionConfig_MP3
	case ".webm":
		return speechpb.RecognitionConfig_WEBM_OPUS
	default:
		return speechpb.RecognitionConfig_ENCODING_UNSPECIFIED
	}
}

func firstTranscript(resp *speechpb.RecognizeResponse) string {
	if resp == nil {
		return ""
	}
	for _, r := range resp.GetResults() {
		alts := r.GetAlternatives()
		if len(alts) == 0 {
			continue
		}
		if t := strings.TrimSpace(alts[0].GetTranscript()); t != "" {
			return t
		}
	}
	return ""
}
