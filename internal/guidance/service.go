package guidance

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/taiwoajasa245/divine-answers/internal/gateway"
	"github.com/taiwoajasa245/divine-answers/pkg/config"
	"github.com/taiwoajasa245/divine-answers/pkg/logger"
)

type GuidanceService struct {
	gateway gateway.Client
	prompts *Prompts
	log     *logger.Logger

	// false when the gateway credential is missing
	configured bool
}

func NewGuidanceService(gw gateway.Client, prompts *Prompts, configured bool, log *logger.Logger) GuidanceService {
	if prompts == nil {
		prompts = DefaultPrompts()
	}
	if log == nil {
		log = logger.Nop()
	}
	return GuidanceService{
		gateway:    gw,
		prompts:    prompts,
		log:        log.With("service", "guidance"),
		configured: configured,
	}
}

// Guide turns one concern into a verse and explanation. Failures are *Error
// values carrying the status the relay should answer with.
func (s *GuidanceService) Guide(ctx context.Context, req Request) (*Response, error) {
	if strings.TrimSpace(req.Problem) == "" {
		return nil, ErrProblemRequired
	}

	if !s.configured || s.gateway == nil {
		return nil, internal(config.ErrMissingAPIKey)
	}

	book := req.Book
	if book == "" {
		book = DefaultBook
	}
	instruction, ok := s.prompts.Instruction(book)
	if !ok {
		return nil, unsupportedBook(book)
	}

	content, err := s.gateway.Complete(ctx, instruction, req.Problem)
	if err != nil {
		return nil, s.mapGatewayError(book, err)
	}

	out := ParseReply(content)
	s.log.Debug("guidance generated", "book", book, "reply_len", len(content), "has_explanation", out.Explanation != "")
	return &out, nil
}

func (s *GuidanceService) mapGatewayError(book Book, err error) error {
	var se *gateway.StatusError
	if !errors.As(err, &se) {
		s.log.Error("Error in spiritual-guidance", "book", book, "error", err)
		return internal(err)
	}

	switch se.StatusCode {
	case http.StatusTooManyRequests:
		s.log.Warn("AI gateway rate limited", "book", book)
		return ErrRateLimited
	case http.StatusPaymentRequired:
		s.log.Warn("AI gateway payment required", "book", book)
		return ErrPaymentRequired
	default:
		s.log.Error("AI gateway error", "status", se.StatusCode, "body", se.Body, "book", book)
		return &Error{Status: http.StatusInternalServerError, Message: msgGatewayError, Err: err}
	}
}
