package core

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"
)

type State int32

const (
	StatePolling State = iota
	StateResponding
	StateWaiting
)

func (s State) String() string {
	switch s {
	case StatePolling:
		return "polling"
	case StateResponding:
		return "responding"
	case StateWaiting:
		return "waiting"
	default:
		return "unknown"
	}
}

// DelayPolicy decides how long the loop sleeps after a failed cycle.
type DelayPolicy interface {
	Next(err error) time.Duration
}

// FixedDelay sleeps the same interval after every failure.
type FixedDelay time.Duration

func (d FixedDelay) Next(error) time.Duration { return time.Duration(d) }

// Relay is the network side of the loop. *RelayClient implements it.
type Relay interface {
	Poll(ctx context.Context, serviceName string) (string, error)
	Respond(ctx context.Context, clientName, body string) error
}

// Loop polls the relay, answers each request through Handler and posts the
// page back. A failed cycle is logged and retried after Delay, forever.
type Loop struct {
	ServiceName string
	RelayAddr   string
	Relay       Relay
	Handler     Handler
	Delay       DelayPolicy
	Clock       clockwork.Clock
	Limiter     *rate.Limiter
	Logger      *slog.Logger

	state atomic.Int32
}

func NewLoop(cfg Config, relay Relay, handler Handler) *Loop {
	limit := rate.Inf
	if cfg.PollRate > 0 {
		limit = rate.Limit(cfg.PollRate)
	}

	return &Loop{
		ServiceName: cfg.ServiceName,
		RelayAddr:   cfg.RelayAddr,
		Relay:       relay,
		Handler:     handler,
		Delay:       FixedDelay(cfg.RetryDelay),
		Clock:       clockwork.NewRealClock(),
		Limiter:     rate.NewLimiter(limit, 1),
		Logger:      slog.Default(),
	}
}

func (l *Loop) State() State {
	return State(l.state.Load())
}

func (l *Loop) setState(log *slog.Logger, s State) {
	if prev := State(l.state.Swap(int32(s))); prev != s {
		log.Debug("Loop state changed", "from", prev, "to", s)
	}
	LoopState.Set(float64(s))
}

// Run repeats cycles until ctx is cancelled. It never returns on its own.
func (l *Loop) Run(ctx context.Context) error {
	l.Logger.Info("Publishing web service", "service", l.ServiceName, "relay", l.RelayAddr)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		log := l.Logger.With("cycle", uuid.NewString())
		err := l.runCycle(ctx, log)
		if err == nil {
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		l.recordFailure(log, err)

		l.setState(log, StateWaiting)
		select {
		case <-l.Clock.After(l.Delay.Next(err)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// RunOnce performs a single poll, handle and respond cycle.
func (l *Loop) RunOnce(ctx context.Context) error {
	return l.runCycle(ctx, l.Logger.With("cycle", uuid.NewString()))
}

func (l *Loop) runCycle(ctx context.Context, log *slog.Logger) error {
	l.setState(log, StatePolling)

	if l.Limiter != nil {
		if err := l.Limiter.Wait(ctx); err != nil {
			return &StageError{Stage: StagePoll, Err: err}
		}
	}

	blob, err := l.Relay.Poll(ctx, l.ServiceName)
	if err != nil {
		return &StageError{Stage: StagePoll, Err: err}
	}

	req, err := ParseRequest(blob)
	if err != nil {
		return &StageError{Stage: StageParse, Err: err}
	}
	log.Info("Request received", "name", req.Name, "url", req.URL, "remoteaddr", req.RemoteAddr, "header", req.Header)

	l.setState(log, StateResponding)

	page, err := l.Handler.Handle(ctx, req)
	if err != nil {
		return &StageError{Stage: StageHandle, Err: err}
	}

	if err := l.Relay.Respond(ctx, req.Name, page); err != nil {
		return &StageError{Stage: StageRespond, Err: err}
	}

	log.Debug("Response delivered", "name", req.Name, "bytes", len(page))
	l.setState(log, StatePolling)
	CyclesTotal.WithLabelValues("ok").Inc()
	return nil
}

func (l *Loop) recordFailure(log *slog.Logger, err error) {
	stage := StageOf(err)
	CyclesTotal.WithLabelValues("error").Inc()
	CycleErrors.WithLabelValues(string(stage)).Inc()

	if IsMalformedRequest(err) {
		log.Warn("Incorrect WebSpark request, skipping cycle", "stage", stage, "err", err)
		return
	}
	log.Error("Error connecting to WebSpark", "relay", l.RelayAddr, "stage", stage, "err", err)
}
