// Package testserver assembles a full in-memory server for functional and
// integration tests.
package testserver

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanchr/history-arrow-2/internal/domain/event"
	"github.com/yanchr/history-arrow-2/internal/domain/label"
	"github.com/yanchr/history-arrow-2/internal/mcp"
	"github.com/yanchr/history-arrow-2/internal/render"
	"github.com/yanchr/history-arrow-2/internal/sqlite"
	"github.com/yanchr/history-arrow-2/internal/timeline"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
	"github.com/yanchr/history-arrow-2/internal/transport"
)

type TestServer struct {
	Server  *httptest.Server
	DB      *sqlite.DB
	Handler *mcp.Handler
	Engine  *timeline.Engine
	Bounds  view.Bounds
}

func New(t *testing.T) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	eventRepo := sqlite.NewEventRepository(db)
	labelRepo := sqlite.NewLabelRepository(db)

	eventSvc := event.NewService(eventRepo, nil)
	labelSvc := label.NewService(labelRepo, nil)

	bounds := view.DefaultBounds()
	engine := timeline.NewEngine(timeline.DefaultConfig(), nil)
	handler := mcp.NewHandler(eventSvc, labelSvc, engine, bounds)

	renderer := render.NewRenderer(render.DefaultOptions())
	svgSvc := render.NewService(eventSvc, labelSvc, engine, renderer, bounds)

	server := httptest.NewServer(transport.NewServer(handler, svgSvc))

	ts := &TestServer{
		Server:  server,
		DB:      db,
		Handler: handler,
		Engine:  engine,
		Bounds:  bounds,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}
