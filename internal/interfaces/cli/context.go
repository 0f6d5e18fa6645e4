package cli

import (
	"context"
	"path/filepath"

	"github.com/lite-lake/boardkit/internal/application/session"
	"github.com/lite-lake/boardkit/internal/application/shapes"
	"github.com/lite-lake/boardkit/internal/application/usecase"
	"github.com/lite-lake/boardkit/internal/config"
	"github.com/lite-lake/boardkit/internal/domain/entity"
	"github.com/lite-lake/boardkit/internal/domain/retry"
	"github.com/lite-lake/boardkit/internal/infrastructure/editor"
	"github.com/lite-lake/boardkit/internal/infrastructure/logger"
	"github.com/lite-lake/boardkit/internal/infrastructure/state"
)

const (
	opBoardLoad = "board.load"
	opBoardSave = "board.save"
)

type Context struct {
	ConfigDir string
	Document  string
}

func NewContext() *Context {
	return &Context{
		ConfigDir: ".",
	}
}

// Board is one mounted editor session backed by the document file. The
// document lock is held from Open until Close, so concurrent invocations on
// the same document wait for each other instead of overwriting.
type Board struct {
	Config  *config.Config
	Hub     *session.Hub
	Shapes  *shapes.Registry
	Editor  *editor.Editor
	Store   *state.FileStore
	Toolbar *usecase.Toolbar
}

func (c *Context) Open(ctx context.Context) (*Board, error) {
	loader := config.NewLoader(c.ConfigDir)
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	docPath := loader.DocumentPath(cfg)
	if c.Document != "" {
		docPath = c.Document
		if !filepath.IsAbs(docPath) {
			docPath = filepath.Join(c.ConfigDir, docPath)
		}
	}

	hub := session.NewHub()
	utils := shapes.Defaults(hub,
		entity.CardProps{W: cfg.Card.Width, H: cfg.Card.Height},
		shapes.IframeSettings{
			DefaultURL: cfg.Iframe.DefaultURL,
			Width:      cfg.Iframe.Width,
			Height:     cfg.Iframe.Height,
			Sandbox:    cfg.Iframe.Sandbox,
		},
	)
	ed := editor.New(utils)

	store := state.NewFileStore(docPath,
		retry.WithMaxAttempts(cfg.Retry.MaxAttempts),
		retry.WithInitialDelay(cfg.Retry.InitialDelay),
	)

	b := &Board{
		Config: cfg,
		Hub:    hub,
		Shapes: utils,
		Editor: ed,
		Store:  store,
	}

	if err := store.Lock(ctx); err != nil {
		b.Close()
		return nil, err
	}

	var doc *entity.Document
	err = logger.TimedOperation(ctx, opBoardLoad, func() error {
		var err error
		doc, err = store.Load(ctx)
		return err
	})
	if err != nil {
		b.Close()
		return nil, err
	}
	if err := ed.LoadSnapshot(doc); err != nil {
		b.Close()
		return nil, err
	}

	hub.SetEditor(ed)
	b.Toolbar = usecase.NewToolbar(&usecase.ToolbarConfig{
		Hub:          hub,
		ZoomDuration: cfg.Toolbar.ZoomDuration,
	})

	logger.Debug("board opened", "document", docPath, "shapes", len(doc.Shapes))
	return b, nil
}

func (b *Board) Save(ctx context.Context) error {
	return logger.TimedOperation(ctx, opBoardSave, func() error {
		return b.Store.Save(ctx, b.Editor.Snapshot())
	})
}

func (b *Board) Close() {
	b.Hub.Close()
	b.Shapes.Close()
	if err := b.Store.Unlock(); err != nil {
		logger.Warn("releasing document lock", "document", b.Store.Path(), "error", err)
	}
}
