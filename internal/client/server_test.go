package client

import (
	"Socialboard/internal/api/config"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

const (
	postsBody     = `{"success":true,"data":[{"id":"1","date":"2024-01-01","platform":"instagram","likes":1,"comments":1,"shares":1,"reach":10,"content":"a","engagementRate":5},{"id":"2","date":"2024-01-02","platform":"twitter","likes":2,"comments":0,"shares":0,"reach":20,"content":"b","engagementRate":3}]}`
	followersBody = `{"success":true,"data":[{"id":"1","date":"2024-01-01","platform":"instagram","followers":500,"newFollowers":10,"unfollows":2,"netGrowth":8}]}`
	statsBody     = `{"success":true,"data":{"dashboard":{"totalFollowers":500,"engagementRate":4,"totalPosts":2,"totalReach":30,"growthRate":0.8,"followerGrowthTrend":0,"engagementTrend":0,"reachTrend":0,"postsThisMonth":1},"platforms":[],"engagement":[]}}`
)

// proxyStub 模拟代理接口，按路径计数，可为单个路径设置失败或阻塞
type proxyStub struct {
	srv *httptest.Server

	mu       sync.Mutex
	hits     map[string]int
	fail     map[string]int
	raw      map[string]string
	gate     chan struct{}
	entered  chan struct{}
	lastBody string
	lastURL  string
}

func newProxyStub(t *testing.T) *proxyStub {
	s := &proxyStub{hits: map[string]int{}, fail: map[string]int{}, raw: map[string]string{}}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *proxyStub) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	s.mu.Lock()
	s.hits[r.Method+" "+r.URL.Path]++
	status := s.fail[r.URL.Path]
	raw, hasRaw := s.raw[r.Method+" "+r.URL.Path]
	gate, entered := s.gate, s.entered
	if r.Method != http.MethodGet {
		s.lastBody = string(body)
		s.lastURL = r.Method + " " + r.URL.RequestURI()
	}
	s.mu.Unlock()

	if gate != nil && r.URL.Path == PostsPath {
		entered <- struct{}{}
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	if hasRaw {
		w.Header().Set("Content-Type", "text/html")
		if status != 0 {
			w.WriteHeader(status)
		}
		_, _ = io.WriteString(w, raw)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"success":false,"error":"boom"}`)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == PostsPath:
		_, _ = io.WriteString(w, postsBody)
	case r.Method == http.MethodGet && r.URL.Path == FollowersPath:
		_, _ = io.WriteString(w, followersBody)
	case r.Method == http.MethodGet && r.URL.Path == StatsPath:
		_, _ = io.WriteString(w, statsBody)
	case r.Method == http.MethodDelete:
		_, _ = io.WriteString(w, `{"success":true,"message":"deleted"}`)
	default:
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"success":true,"data":`+string(body)+`}`)
	}
}

func (s *proxyStub) Hits(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[key]
}

func (s *proxyStub) Fail(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[path] = status
}

// Raw 让指定请求返回原样 body，状态码沿用 Fail 的设置，默认 200
func (s *proxyStub) Raw(key, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw[key] = body
}

// Block 之后的 posts 请求会阻塞，直至 gate 关闭或请求被取消
func (s *proxyStub) Block() (gate chan struct{}, entered chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = make(chan struct{})
	s.entered = make(chan struct{}, 4)
	return s.gate, s.entered
}

func (s *proxyStub) Unblock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = nil
	s.entered = nil
}

func (s *proxyStub) LastWrite() (url, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastURL, s.lastBody
}

func (s *proxyStub) config() config.ClientConfig {
	return config.ClientConfig{BaseURL: s.srv.URL, Token: "t", Timeout: 5}
}
