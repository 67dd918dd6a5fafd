package guidance

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/taiwoajasa245/divine-answers/internal/gateway"
	"github.com/taiwoajasa245/divine-answers/pkg/logger"
)

type fakeGateway struct {
	reply  string
	err    error
	calls  int
	system string
	user   string
}

func (f *fakeGateway) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	f.system = system
	f.user = user
	return f.reply, f.err
}

func newService(gw gateway.Client) GuidanceService {
	return NewGuidanceService(gw, nil, true, nil)
}

func TestGuideParsesReply(t *testing.T) {
	raw := "Verse: Philippians 4:6-7 ... Explanation: Trust in God's peace."
	gw := &fakeGateway{reply: raw}
	s := newService(gw)

	resp, err := s.Guide(context.Background(), Request{Problem: "I feel anxious", Book: Bible})
	require.NoError(t, err)

	assert.Equal(t, &Response{
		Verse:       "Philippians 4:6-7 ...",
		Explanation: "Trust in God's peace.",
		FullText:    raw,
	}, resp)
	assert.Equal(t, "I feel anxious", gw.user)
	want, _ := DefaultPrompts().Instruction(Bible)
	assert.Equal(t, want, gw.system)
}

func TestGuideEveryBookReturnsVerse(t *testing.T) {
	for _, b := range Books() {
		gw := &fakeGateway{reply: "Verse: something wise Explanation: because"}
		s := newService(gw)

		resp, err := s.Guide(context.Background(), Request{Problem: "help", Book: b})
		require.NoError(t, err, b)
		assert.NotEmpty(t, resp.Verse, b)

		want, _ := DefaultPrompts().Instruction(b)
		assert.Equal(t, want, gw.system, b)
	}
}

func TestGuideRequiresProblem(t *testing.T) {
	gw := &fakeGateway{}
	s := newService(gw)

	for _, p := range []string{"", "   ", "\n\t"} {
		_, err := s.Guide(context.Background(), Request{Problem: p, Book: Bible})
		assert.Same(t, ErrProblemRequired, err)
	}
	assert.Zero(t, gw.calls)
}

func TestGuideMissingCredential(t *testing.T) {
	gw := &fakeGateway{}
	s := NewGuidanceService(gw, nil, false, nil)

	_, err := s.Guide(context.Background(), Request{Problem: "x", Book: Bible})

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, http.StatusInternalServerError, gerr.Status)
	assert.Equal(t, "LOVABLE_API_KEY is not configured", gerr.Message)
	assert.Zero(t, gw.calls)
}

func TestGuideBookSelection(t *testing.T) {
	gw := &fakeGateway{reply: "Verse: v"}
	s := newService(gw)

	_, err := s.Guide(context.Background(), Request{Problem: "x"})
	require.NoError(t, err)
	bible, _ := DefaultPrompts().Instruction(Bible)
	assert.Equal(t, bible, gw.system)

	_, err = s.Guide(context.Background(), Request{Problem: "x", Book: "Torah"})
	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, http.StatusBadRequest, gerr.Status)
	assert.Contains(t, gerr.Message, "Unsupported book: Torah")
	assert.Equal(t, 1, gw.calls)
}

func TestGuideMapsGatewayStatus(t *testing.T) {
	tests := []struct {
		status  int
		want    int
		message string
	}{
		{http.StatusTooManyRequests, http.StatusTooManyRequests, "Rate limits exceeded, please try again later."},
		{http.StatusPaymentRequired, http.StatusPaymentRequired, "Payment required, please add credits to your workspace."},
		{http.StatusBadGateway, http.StatusInternalServerError, "AI gateway error"},
		{http.StatusUnauthorized, http.StatusInternalServerError, "AI gateway error"},
	}

	for _, tt := range tests {
		gw := &fakeGateway{err: &gateway.StatusError{StatusCode: tt.status, Body: "upstream detail"}}
		s := newService(gw)

		_, err := s.Guide(context.Background(), Request{Problem: "x", Book: Quran})

		var gerr *Error
		require.True(t, errors.As(err, &gerr))
		assert.Equal(t, tt.want, gerr.Status)
		assert.Equal(t, tt.message, gerr.Message)
		assert.NotContains(t, gerr.Message, "upstream detail")
	}
}

func TestGuideLogsUpstreamBodyServerSide(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	gw := &fakeGateway{err: &gateway.StatusError{StatusCode: 500, Body: "model overloaded"}}
	s := NewGuidanceService(gw, nil, true, logger.FromZap(zap.New(core)))

	_, err := s.Guide(context.Background(), Request{Problem: "x", Book: Bible})
	require.Error(t, err)

	entries := logs.FilterMessage("AI gateway error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "model overloaded", entries[0].ContextMap()["body"])
}

func TestGuideTransportErrorIsInternal(t *testing.T) {
	gw := &fakeGateway{err: errors.New("failed to send request: dial tcp: refused")}
	s := newService(gw)

	_, err := s.Guide(context.Background(), Request{Problem: "x", Book: Bible})

	var gerr *Error
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, http.StatusInternalServerError, gerr.Status)
	assert.Equal(t, "failed to send request: dial tcp: refused", gerr.Message)
}
