package board

import (
	"context"
	"fmt"
	"net/http"

	"gearguard/pkg/client"
	"gearguard/pkg/querycache"

	"go.uber.org/zap"
)

// Confirmer asks the user to accept a transition into scrap.
type Confirmer interface {
	ConfirmScrap(ctx context.Context, requestID uint64) (bool, error)
}

// Notification is a user visible failure report.
type Notification struct {
	RequestID uint64
	Kind      client.ErrorKind
	Message   string
	Err       error
}

type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, id uint64, status client.Status) (*client.StatusChange, error)
}

type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeCancelled
	OutcomeFailed
	OutcomeUnchanged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeFailed:
		return "failed"
	case OutcomeUnchanged:
		return "unchanged"
	}
	return fmt.Sprintf("outcome(%d)", int(o))
}

// Gate mediates every status change before it reaches the store.
type Gate struct {
	store   StatusUpdater
	confirm Confirmer
	notify  Notifier
	view    *View
	cache   *querycache.Cache
	logger  *zap.Logger
}

func NewGate(store StatusUpdater, confirm Confirmer, notify Notifier, view *View, cache *querycache.Cache, logger *zap.Logger) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gate{store: store, confirm: confirm, notify: notify, view: view, cache: cache, logger: logger}
}

// Transition moves request id from current to proposed. Scrap needs the
// Confirmer's approval; a cancel issues no call and changes nothing. On
// failure the view shows current again and the Notifier is told. Nothing is
// retried.
func (g *Gate) Transition(ctx context.Context, id uint64, current, proposed client.Status) (Outcome, error) {
	if !proposed.Valid() {
		err := &client.ValidationError{StatusCode: http.StatusBadRequest, Message: fmt.Sprintf("invalid status %q", proposed)}
		g.report(ctx, id, err)
		return OutcomeFailed, err
	}
	if proposed == current {
		return OutcomeUnchanged, nil
	}

	if proposed == client.StatusScrap {
		ok, err := g.confirm.ConfirmScrap(ctx, id)
		if err != nil {
			g.logger.Warn("Transition: confirmation failed", zap.Uint64("id", id), zap.Error(err))
			return OutcomeCancelled, err
		}
		if !ok {
			g.logger.Debug("Transition: scrap cancelled", zap.Uint64("id", id))
			return OutcomeCancelled, nil
		}
	}

	tok := g.view.Propose(id, proposed)

	if _, err := g.store.UpdateStatus(ctx, id, proposed); err != nil {
		g.view.Rollback(tok)
		g.report(ctx, id, err)
		return OutcomeFailed, err
	}

	g.view.Commit(tok, proposed)
	g.cache.Invalidate(querycache.RequestDetail(id), querycache.DashboardStats())
	g.cache.InvalidatePrefix(querycache.EntityRequests, "list")

	g.logger.Info("Transition: applied",
		zap.Uint64("id", id),
		zap.String("from", string(current)),
		zap.String("to", string(proposed)),
	)
	return OutcomeApplied, nil
}

func (g *Gate) report(ctx context.Context, id uint64, err error) {
	g.logger.Warn("Transition: failed", zap.Uint64("id", id), zap.Error(err))
	g.notify.Notify(ctx, Notification{
		RequestID: id,
		Kind:      client.Kind(err),
		Message:   err.Error(),
		Err:       err,
	})
}
