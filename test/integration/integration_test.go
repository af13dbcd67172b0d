package integration_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanchr/history-arrow-2/internal/testserver"
	"github.com/yanchr/history-arrow-2/internal/timeline"
	"github.com/yanchr/history-arrow-2/internal/timeline/cluster"
	"github.com/yanchr/history-arrow-2/internal/timeline/view"
	"github.com/yanchr/history-arrow-2/internal/transport"
)

// rpc posts one JSON-RPC request and decodes the result into out.
func rpc(t *testing.T, ts *testserver.TestServer, method string, params, out any) *transport.Error {
	t.Helper()

	payload, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"params":  params,
		"id":      1,
	})
	require.NoError(t, err)

	resp, err := http.Post(ts.Server.URL+"/rpc", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rpcResp struct {
		Result json.RawMessage  `json:"result"`
		Error  *transport.Error `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rpcResp))
	if rpcResp.Error != nil {
		return rpcResp.Error
	}
	if out != nil {
		require.NoError(t, json.Unmarshal(rpcResp.Result, out))
	}
	return nil
}

type eventResult struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	DateKind      string   `json:"date_kind"`
	StartDate     *string  `json:"start_date"`
	StartYearsAgo *float64 `json:"start_years_ago"`
	Label         string   `json:"label"`
}

type layoutResult struct {
	Window   view.Window       `json:"window"`
	Markers  []timeline.Marker `json:"markers"`
	Clusters []cluster.Cluster `json:"clusters"`
}

type windowResult struct {
	Window view.Window `json:"window"`
}

func TestIntegration_EventLifecycle(t *testing.T) {
	ts := testserver.New(t)

	require.Nil(t, rpc(t, ts, "create_label", map[string]any{"name": "geology", "color": "#8b5a2b"}, nil))

	var earth eventResult
	require.Nil(t, rpc(t, ts, "create_event", map[string]any{
		"title":           "Formation of Earth",
		"date_kind":       "astronomical",
		"start_years_ago": 4.54e9,
		"end_years_ago":   4.0e9,
		"label":           "geology",
	}, &earth))
	require.NotEmpty(t, earth.ID)

	var moon eventResult
	require.Nil(t, rpc(t, ts, "create_event", map[string]any{
		"title":      "Moon landing",
		"date_kind":  "calendar",
		"start_date": "1969-07-20",
	}, &moon))

	var caesar eventResult
	require.Nil(t, rpc(t, ts, "create_event", map[string]any{
		"title":      "Assassination of Caesar",
		"date_kind":  "calendar",
		"start_date": "-0044-03-15",
	}, &caesar))

	var events []eventResult
	require.Nil(t, rpc(t, ts, "list_events", map[string]any{}, &events))
	require.Len(t, events, 3)

	var got eventResult
	require.Nil(t, rpc(t, ts, "get_event", map[string]any{"id": caesar.ID}, &got))
	require.Equal(t, "-0044-03-15", *got.StartDate)

	require.Nil(t, rpc(t, ts, "update_event", map[string]any{
		"id":    moon.ID,
		"title": "Apollo 11 landing",
	}, &got))
	require.Equal(t, "Apollo 11 landing", got.Title)

	rpcErr := rpc(t, ts, "get_event", map[string]any{"id": "missing"}, nil)
	require.NotNil(t, rpcErr)
	require.Contains(t, rpcErr.Message, "EVENT_NOT_FOUND")

	require.Nil(t, rpc(t, ts, "delete_event", map[string]any{"id": caesar.ID}, nil))
	require.Nil(t, rpc(t, ts, "list_events", map[string]any{}, &events))
	require.Len(t, events, 2)
}

func TestIntegration_LayoutAndNavigation(t *testing.T) {
	ts := testserver.New(t)

	require.Nil(t, rpc(t, ts, "create_label", map[string]any{"name": "geology", "color": "#8b5a2b"}, nil))
	require.Nil(t, rpc(t, ts, "create_event", map[string]any{
		"title": "Formation of Earth", "date_kind": "astronomical",
		"start_years_ago": 4.54e9, "end_years_ago": 4.0e9, "label": "geology",
	}, nil))
	require.Nil(t, rpc(t, ts, "create_event", map[string]any{
		"title": "Moon landing", "date_kind": "calendar", "start_date": "1969-07-20",
	}, nil))

	var layout layoutResult
	require.Nil(t, rpc(t, ts, "compute_layout", map[string]any{
		"window": map[string]any{"start": 1, "end": 5e9},
	}, &layout))
	require.Len(t, layout.Markers, 2)
	for _, m := range layout.Markers {
		if m.Title == "Formation of Earth" {
			require.True(t, m.IsSpan)
			require.Equal(t, "#8b5a2b", m.Color)
		}
	}

	// Pan a quarter log-span toward the past, then back again.
	var panned windowResult
	require.Nil(t, rpc(t, ts, "pan_window", map[string]any{
		"window": map[string]any{"start": 100, "end": 1e6}, "direction": "older",
	}, &panned))
	require.Greater(t, panned.Window.Start, 100.0)

	var back windowResult
	require.Nil(t, rpc(t, ts, "pan_window", map[string]any{
		"window": panned.Window, "direction": "newer",
	}, &back))
	require.InDelta(t, 100, back.Window.Start, 0.01)
	require.InDelta(t, 1e6, back.Window.End, 10)

	var reset windowResult
	require.Nil(t, rpc(t, ts, "reset_window", map[string]any{}, &reset))
	require.Equal(t, view.DefaultWindow(ts.Bounds), reset.Window)
}

func TestIntegration_ClusterWorkflow(t *testing.T) {
	ts := testserver.New(t)

	require.Nil(t, rpc(t, ts, "create_event", map[string]any{
		"id": "a", "title": "A", "date_kind": "astronomical", "start_years_ago": 100,
	}, nil))
	require.Nil(t, rpc(t, ts, "create_event", map[string]any{
		"id": "b", "title": "B", "date_kind": "astronomical", "start_years_ago": 102,
	}, nil))

	window := map[string]any{"start": 1, "end": 1000}

	var clusters struct {
		Clusters []cluster.Cluster `json:"clusters"`
	}
	require.Nil(t, rpc(t, ts, "compute_clusters", map[string]any{"window": window}, &clusters))
	require.Len(t, clusters.Clusters, 1)
	require.Equal(t, []string{"a", "b"}, clusters.Clusters[0].MemberIDs)

	var zoomed windowResult
	require.Nil(t, rpc(t, ts, "cluster_zoom_bounds", map[string]any{
		"window": window, "cluster_id": clusters.Clusters[0].ID,
	}, &zoomed))
	require.LessOrEqual(t, zoomed.Window.Start, 100.0)
	require.GreaterOrEqual(t, zoomed.Window.End, 102.0)

	// Expanding the cluster spreads its members with fisheye offsets.
	var layout layoutResult
	require.Nil(t, rpc(t, ts, "compute_layout", map[string]any{
		"window": window, "active_cluster_id": clusters.Clusters[0].ID,
	}, &layout))
	var offsets []float64
	for _, m := range layout.Markers {
		require.True(t, m.LabelVisible)
		offsets = append(offsets, m.FisheyeOffset)
	}
	require.Len(t, offsets, 2)
	require.NotEqual(t, offsets[0], offsets[1])
}

func TestIntegration_SVGSnapshot(t *testing.T) {
	ts := testserver.New(t)

	require.Nil(t, rpc(t, ts, "create_event", map[string]any{
		"title": "Moon landing", "date_kind": "calendar", "start_date": "1969-07-20",
	}, nil))

	resp, err := http.Get(ts.Server.URL + "/timeline.svg?start=1&end=1000")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "Moon landing")
}
