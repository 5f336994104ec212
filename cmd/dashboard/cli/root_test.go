package cli

import (
	"Socialboard/internal/api/config"
	"Socialboard/internal/client"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newStubProxy(t *testing.T, statsBody string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case client.StatsPath:
			_, _ = io.WriteString(w, statsBody)
		default:
			_, _ = io.WriteString(w, `{"success":true,"data":[]}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestDashboard(baseURL string) *client.Dashboard {
	cfg := config.ClientConfig{BaseURL: baseURL, Timeout: 5}
	return client.NewDashboard(client.NewFetcher(cfg, client.NewCache(time.Minute, nil)))
}

func TestLoadStateInterrupted(t *testing.T) {
	srv := newStubProxy(t, `{"success":true,"data":{"dashboard":{"totalFollowers":1000}}}`)
	d := newTestDashboard(srv.URL)
	defer d.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := loadState(ctx, d); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestLoadState(t *testing.T) {
	srv := newStubProxy(t, `{"success":true,"data":{"dashboard":{"totalFollowers":1000,"totalPosts":0},"platforms":[],"engagement":[]}}`)
	d := newTestDashboard(srv.URL)
	defer d.Close()

	st, err := loadState(context.Background(), d)
	if err != nil {
		t.Fatal(err)
	}
	if st.Dashboard == nil || st.Dashboard.TotalFollowers != 1000 {
		t.Fatalf("dashboard = %+v", st.Dashboard)
	}
}

func TestLoadStateUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	d := newTestDashboard(srv.URL)
	defer d.Close()

	if _, err := loadState(context.Background(), d); err == nil {
		t.Fatal("expected upstream error")
	}
}
