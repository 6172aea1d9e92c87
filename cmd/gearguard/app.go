package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"gearguard/pkg/board"
	"gearguard/pkg/client"
	"gearguard/pkg/config"
	"gearguard/pkg/querycache"

	"go.uber.org/zap"
)

// app carries the state shared by every command. The client and workspace
// are built once flags are parsed.
type app struct {
	cfg    *config.ClientConfig
	logger *zap.Logger
	in     *bufio.Reader
	out    io.Writer

	assumeYes bool
	asJSON    bool

	api       *client.Client
	workspace *board.Workspace
}

func newApp(cfg *config.ClientConfig, logger *zap.Logger, in io.Reader, out io.Writer) *app {
	return &app{cfg: cfg, logger: logger, in: bufio.NewReader(in), out: out}
}

func (a *app) connect() {
	a.api = client.New(a.cfg.BaseURL,
		client.WithTimeout(a.cfg.Timeout),
		client.WithToken(a.cfg.Token),
		client.WithLogger(a.logger.Named("client")),
	)
	a.workspace = board.NewWorkspace(a.api, board.WorkspaceConfig{
		Cache:     querycache.New(querycache.WithLogger(a.logger.Named("cache"))),
		Confirmer: &promptConfirmer{app: a},
		Notifier:  &printNotifier{out: a.out},
		Logger:    a.logger.Named("board"),
	})
}

// promptConfirmer asks on stdin before a request is scrapped.
type promptConfirmer struct {
	app *app
	mu  sync.Mutex
}

func (p *promptConfirmer) ConfirmScrap(_ context.Context, id uint64) (bool, error) {
	if p.app.assumeYes {
		return true, nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.app.out, "Scrap request #%d? The equipment will be marked unusable. [y/N]: ", id)
	line, err := p.app.in.ReadString('\n')
	if err != nil && line == "" {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}

// printNotifier writes failures where a UI would raise a toast.
type printNotifier struct {
	out io.Writer
}

func (n *printNotifier) Notify(_ context.Context, note board.Notification) {
	if note.RequestID != 0 {
		fmt.Fprintf(n.out, "request #%d: %s\n", note.RequestID, note.Message)
		return
	}
	fmt.Fprintln(n.out, note.Message)
}
