package board

import (
	"context"
	"time"

	"gearguard/pkg/client"
	"gearguard/pkg/querycache"
	"gearguard/pkg/types"

	"go.uber.org/zap"
)

// API is the part of the REST client the workspace uses.
type API interface {
	StatusUpdater
	ListRequests(ctx context.Context, filter client.RequestFilter) ([]client.Request, error)
	GetRequest(ctx context.Context, id uint64) (*client.RequestDetail, error)
	CreateRequest(ctx context.Context, in client.CreateRequestInput) (uint64, error)
	UpdateRequest(ctx context.Context, id uint64, in client.UpdateRequestInput) error
	AddComment(ctx context.Context, id uint64, text string) (uint64, error)
	DeleteRequest(ctx context.Context, id uint64) error
	DashboardStats(ctx context.Context) (*types.DashboardStats, error)
}

// Workspace ties the client, cache, view and gate together. Reads go through
// the cache; every mutation invalidates the keys it affects.
type Workspace struct {
	api        API
	cache      *querycache.Cache
	view       *View
	projection *Projection
	gate       *Gate
	notify     Notifier
	logger     *zap.Logger
}

// WorkspaceConfig holds the collaborators of a Workspace. Zero fields get
// defaults: a fresh cache, time.Now, a silent notifier and a Confirmer that
// refuses scrap.
type WorkspaceConfig struct {
	Cache     *querycache.Cache
	Confirmer Confirmer
	Notifier  Notifier
	Clock     func() time.Time
	Logger    *zap.Logger
}

func NewWorkspace(api API, cfg WorkspaceConfig) *Workspace {
	if cfg.Cache == nil {
		cfg.Cache = querycache.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Notifier == nil {
		cfg.Notifier = nopNotifier{}
	}
	if cfg.Confirmer == nil {
		cfg.Confirmer = denyScrap{}
	}
	view := NewView()
	return &Workspace{
		api:        api,
		cache:      cfg.Cache,
		view:       view,
		projection: NewProjection(cfg.Clock),
		gate:       NewGate(api, cfg.Confirmer, cfg.Notifier, view, cfg.Cache, cfg.Logger.Named("gate")),
		notify:     cfg.Notifier,
		logger:     cfg.Logger,
	}
}

func (w *Workspace) Cache() *querycache.Cache { return w.cache }
func (w *Workspace) View() *View              { return w.view }

// Requests returns the filtered collection with displayed statuses applied.
func (w *Workspace) Requests(ctx context.Context, filter client.RequestFilter) ([]client.Request, error) {
	list, err := querycache.Fetch(ctx, w.cache, querycache.RequestList(filter.Query()),
		func(ctx context.Context) ([]client.Request, error) {
			list, err := w.api.ListRequests(ctx, filter)
			if err == nil {
				w.view.Load(list)
			}
			return list, err
		})
	if err != nil {
		return nil, err
	}
	return w.view.Apply(list), nil
}

func (w *Workspace) Board(ctx context.Context, filter client.RequestFilter) ([]Column, error) {
	list, err := w.Requests(ctx, filter)
	if err != nil {
		return nil, err
	}
	return w.projection.Partition(list), nil
}

func (w *Workspace) List(ctx context.Context, filter client.RequestFilter) ([]Item, error) {
	list, err := w.Requests(ctx, filter)
	if err != nil {
		return nil, err
	}
	return w.projection.Flat(list), nil
}

func (w *Workspace) Request(ctx context.Context, id uint64) (*client.RequestDetail, error) {
	detail, err := querycache.Fetch(ctx, w.cache, querycache.RequestDetail(id),
		func(ctx context.Context) (*client.RequestDetail, error) {
			d, err := w.api.GetRequest(ctx, id)
			if err == nil {
				w.view.Load([]client.Request{d.Request})
			}
			return d, err
		})
	if err != nil {
		return nil, err
	}
	out := *detail
	if s, ok := w.view.Status(id); ok {
		out.Status = s
	}
	return &out, nil
}

func (w *Workspace) Dashboard(ctx context.Context) (*types.DashboardStats, error) {
	return querycache.Fetch(ctx, w.cache, querycache.DashboardStats(), w.api.DashboardStats)
}

// IsOverdue uses the workspace clock.
func (w *Workspace) IsOverdue(r client.Request) bool {
	return w.projection.IsOverdue(r.ScheduledDate, r.Status)
}

func (w *Workspace) Create(ctx context.Context, in client.CreateRequestInput) (uint64, error) {
	id, err := w.api.CreateRequest(ctx, in)
	if err != nil {
		w.fail(ctx, 0, err)
		return 0, err
	}
	w.invalidateLists()
	w.cache.Invalidate(querycache.DashboardStats(), querycache.Key{Entity: querycache.EntityCalendar})
	return id, nil
}

func (w *Workspace) Update(ctx context.Context, id uint64, in client.UpdateRequestInput) error {
	if err := w.api.UpdateRequest(ctx, id, in); err != nil {
		w.fail(ctx, id, err)
		return err
	}
	w.cache.Invalidate(querycache.RequestDetail(id), querycache.Key{Entity: querycache.EntityCalendar})
	w.invalidateLists()
	return nil
}

// Move requests a status change through the gate. The current status is the
// one on display; it is fetched when the request has not been seen yet.
func (w *Workspace) Move(ctx context.Context, id uint64, proposed client.Status) (Outcome, error) {
	current, ok := w.view.Status(id)
	if !ok {
		detail, err := w.Request(ctx, id)
		if err != nil {
			w.fail(ctx, id, err)
			return OutcomeFailed, err
		}
		current = detail.Status
	}
	return w.gate.Transition(ctx, id, current, proposed)
}

func (w *Workspace) Comment(ctx context.Context, id uint64, text string) (uint64, error) {
	commentID, err := w.api.AddComment(ctx, id, text)
	if err != nil {
		w.fail(ctx, id, err)
		return 0, err
	}
	w.cache.Invalidate(querycache.RequestDetail(id))
	return commentID, nil
}

func (w *Workspace) Delete(ctx context.Context, id uint64) error {
	if err := w.api.DeleteRequest(ctx, id); err != nil {
		w.fail(ctx, id, err)
		return err
	}
	w.view.Forget(id)
	w.cache.Invalidate(querycache.RequestDetail(id), querycache.DashboardStats())
	w.invalidateLists()
	return nil
}

func (w *Workspace) invalidateLists() {
	w.cache.InvalidatePrefix(querycache.EntityRequests, "list")
}

func (w *Workspace) fail(ctx context.Context, id uint64, err error) {
	w.logger.Warn("request operation failed", zap.Uint64("id", id), zap.Error(err))
	w.notify.Notify(ctx, Notification{RequestID: id, Kind: client.Kind(err), Message: err.Error(), Err: err})
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notification) {}

// denyScrap refuses every scrap when no Confirmer is configured.
type denyScrap struct{}

func (denyScrap) ConfirmScrap(context.Context, uint64) (bool, error) { return false, nil }
