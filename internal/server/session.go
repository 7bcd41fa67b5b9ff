package server

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/handwave/catchball/internal/coach"
	"github.com/handwave/catchball/internal/game"
	"github.com/handwave/catchball/internal/protocol"
	"github.com/handwave/catchball/internal/storage"
)

const writeTimeout = 5 * time.Second

// session is one connected client with its private game instance. All
// game access happens on the read loop goroutine; only the coach tip is
// delivered asynchronously, which is why writes take a mutex.
type session struct {
	conn *websocket.Conn
	game *game.Game
	srv  *Server

	writeMu sync.Mutex

	started time.Time
	throws  int
	catches int
	drops   int
}

func newSession(conn *websocket.Conn, srv *Server) *session {
	g := game.New()
	g.Reset(srv.config.Runtime)
	return &session{conn: conn, game: g, srv: srv}
}

// run reads and dispatches messages until the connection drops. If the
// client disconnects mid-play the session result is still recorded.
func (s *session) run(ctx context.Context) {
	defer func() {
		if s.game.State() == game.StatePlaying {
			s.finish("disconnect")
		}
		s.conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		_, data, err := s.conn.Read(ctx)
		if err != nil {
			return
		}

		env, err := protocol.DecodeEnvelope(data)
		if err != nil {
			s.sendError(ctx, err.Error())
			continue
		}
		s.dispatch(ctx, env)
	}
}

func (s *session) dispatch(ctx context.Context, env protocol.Envelope) {
	switch env.T {
	case protocol.MsgHello:
		s.handleHello(ctx, env)
	case protocol.MsgFrame:
		s.handleFrame(ctx, env)
	case protocol.MsgStart:
		s.handleStart(ctx)
	case protocol.MsgStop:
		s.handleStop(ctx)
	case protocol.MsgSetTarget:
		s.handleSetTarget(ctx, env)
	case protocol.MsgGameOver:
		s.handleGameOver(ctx, env)
	case protocol.MsgCoachAsk:
		s.requestTip(ctx)
	default:
		s.sendError(ctx, "unknown message type: "+env.T)
	}
}

func (s *session) handleHello(ctx context.Context, env protocol.Envelope) {
	hello, err := protocol.DecodePayload[protocol.Hello](env)
	if err != nil {
		s.sendError(ctx, err.Error())
		return
	}
	if hello.Version != protocol.Version {
		s.sendError(ctx, "unsupported protocol version")
		return
	}

	s.send(ctx, protocol.MsgWelcome, protocol.Welcome{
		Version:     protocol.Version,
		TickRate:    s.srv.config.Runtime.TickRate,
		TargetBalls: s.game.TargetBalls(),
	})
}

func (s *session) handleFrame(ctx context.Context, env protocol.Envelope) {
	msg, err := protocol.DecodePayload[protocol.FrameMsg](env)
	if err != nil {
		s.sendError(ctx, err.Error())
		return
	}

	result := s.game.Step(protocol.ToFrame(msg), time.Now())
	s.count(result.Events)

	s.send(ctx, protocol.MsgState, protocol.StateOf(s.game))
	if len(result.Events) > 0 {
		s.send(ctx, protocol.MsgEvents, protocol.Events{Events: protocol.EventsOf(result.Events)})
	}
}

func (s *session) handleStart(ctx context.Context) {
	events := s.game.Start(time.Now())
	if len(events) > 0 {
		s.started = time.Now()
		s.throws, s.catches, s.drops = 0, 0, 0
		s.send(ctx, protocol.MsgEvents, protocol.Events{Events: protocol.EventsOf(events)})
	}
	s.send(ctx, protocol.MsgState, protocol.StateOf(s.game))
}

func (s *session) handleStop(ctx context.Context) {
	events := s.game.Stop()
	if len(events) > 0 {
		s.finish("stopped")
		s.send(ctx, protocol.MsgEvents, protocol.Events{Events: protocol.EventsOf(events)})
	}
	s.send(ctx, protocol.MsgState, protocol.StateOf(s.game))
}

func (s *session) handleSetTarget(ctx context.Context, env protocol.Envelope) {
	msg, err := protocol.DecodePayload[protocol.SetTarget](env)
	if err != nil {
		s.sendError(ctx, err.Error())
		return
	}
	if err := s.game.SetTargetBalls(msg.Count); err != nil {
		s.sendError(ctx, err.Error())
		return
	}
	s.send(ctx, protocol.MsgState, protocol.StateOf(s.game))
}

func (s *session) handleGameOver(ctx context.Context, env protocol.Envelope) {
	msg, err := protocol.DecodePayload[protocol.GameOverMsg](env)
	if err != nil {
		s.sendError(ctx, err.Error())
		return
	}

	wasPlaying := s.game.State() == game.StatePlaying
	events := s.game.InjectGameOver(msg.Reason)
	if wasPlaying {
		s.finish(msg.Reason)
		s.requestTip(ctx)
	}
	s.send(ctx, protocol.MsgEvents, protocol.Events{Events: protocol.EventsOf(events)})
	s.send(ctx, protocol.MsgState, protocol.StateOf(s.game))
}

// count accumulates per-session stats from step events.
func (s *session) count(events []game.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case game.EventThrown:
			s.throws++
		case game.EventCaught:
			s.catches++
		case game.EventDropped:
			s.drops++
		}
	}
}

// finish persists the session result. Best-effort: persistence failures
// never disturb the connection.
func (s *session) finish(reason string) {
	if s.srv.store == nil {
		return
	}

	duration := 0
	if !s.started.IsZero() {
		duration = int(time.Since(s.started).Seconds())
	}
	_, err := s.srv.store.SaveSession(storage.SessionResult{
		Score:       s.game.Score(),
		Throws:      s.throws,
		Catches:     s.catches,
		Drops:       s.drops,
		TargetBalls: s.game.TargetBalls(),
		Duration:    duration,
		EndReason:   reason,
	})
	if err != nil {
		s.srv.logger.Warn("could not save session", "error", err)
	}
}

// requestTip fetches a coaching tip in the background and delivers it
// when ready. The read loop is never blocked on the coach endpoint.
func (s *session) requestTip(ctx context.Context) {
	if s.srv.coach == nil {
		return
	}

	summary := coach.Summary{
		Score:   s.game.Score(),
		Throws:  s.throws,
		Catches: s.catches,
		Drops:   s.drops,
	}
	if !s.started.IsZero() {
		summary.Duration = time.Since(s.started)
	}

	go func() {
		tip := s.srv.coach.Tip(ctx, summary)
		s.send(ctx, protocol.MsgCoach, protocol.Coach{Text: tip})
	}()
}

func (s *session) send(ctx context.Context, t string, payload any) {
	data, err := protocol.Encode(t, payload)
	if err != nil {
		s.srv.logger.Error("encode failed", "type", t, "error", err)
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	wctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	if err := s.conn.Write(wctx, websocket.MessageText, data); err != nil {
		s.srv.logger.Debug("write failed", "type", t, "error", err)
	}
}

func (s *session) sendError(ctx context.Context, msg string) {
	s.send(ctx, protocol.MsgError, protocol.Error{Message: msg})
}
