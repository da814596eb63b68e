// Package web serves compiled SRAM results over HTTP for interactive
// inspection of comparison runs.
package web

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/pkg/browser"
	"github.com/shirou/gopsutil/process"

	"github.com/sarchlab/sramgen/compiler"
)

// A Server exposes a set of compilation results as JSON endpoints plus a
// minimal index page.
type Server struct {
	portNumber  int
	openBrowser bool

	mu      sync.Mutex
	results []compiler.Result
	sweeps  map[string][]compiler.SweepPoint
}

// NewServer creates an empty report server.
func NewServer() *Server {
	return &Server{
		sweeps: make(map[string][]compiler.SweepPoint),
	}
}

// WithPortNumber sets the port the server listens on. Ports below 1000 are
// rejected and a random port is used instead.
func (s *Server) WithPortNumber(portNumber int) *Server {
	if portNumber < 1000 {
		fmt.Fprintf(os.Stderr,
			"Port number %d is not allowed for the report server, "+
				"using a random port instead.\n", portNumber)
		portNumber = 0
	}

	s.portNumber = portNumber

	return s
}

// WithBrowser makes StartServer open the report in the default browser.
func (s *Server) WithBrowser() *Server {
	s.openBrowser = true
	return s
}

// AddResult registers one compilation result to be served.
func (s *Server) AddResult(res compiler.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results = append(s.results, res)
}

// AddSweep registers the power sweep of one configuration, keyed by its
// fingerprint.
func (s *Server) AddSweep(fingerprint string, pts []compiler.SweepPoint) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweeps[fingerprint] = pts
}

// StartServer starts serving in the background and returns the bound
// address.
func (s *Server) StartServer() (string, error) {
	r := mux.NewRouter()
	r.HandleFunc("/api/results", s.listResults)
	r.HandleFunc("/api/sweep/{fingerprint}", s.listSweep)
	r.HandleFunc("/api/status", s.status)
	r.PathPrefix("/").Handler(http.FileServer(getAssets()))

	actualPort := ":0"
	if s.portNumber > 1000 {
		actualPort = ":" + strconv.Itoa(s.portNumber)
	}

	listener, err := net.Listen("tcp", actualPort)
	if err != nil {
		return "", fmt.Errorf("starting report server: %w", err)
	}

	url := fmt.Sprintf("http://localhost:%d",
		listener.Addr().(*net.TCPAddr).Port)
	fmt.Fprintf(os.Stderr, "Serving SRAM report at %s\n", url)

	go func() {
		if err := http.Serve(listener, r); err != nil {
			panic(err)
		}
	}()

	if s.openBrowser {
		if err := browser.OpenURL(url); err != nil {
			fmt.Fprintf(os.Stderr, "cannot open browser: %v\n", err)
		}
	}

	return url, nil
}

func (s *Server) listResults(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, s.results)
}

func (s *Server) listSweep(w http.ResponseWriter, r *http.Request) {
	fingerprint := mux.Vars(r)["fingerprint"]

	s.mu.Lock()
	pts, ok := s.sweeps[fingerprint]
	s.mu.Unlock()

	if !ok {
		http.Error(w, "no sweep for "+fingerprint, http.StatusNotFound)
		return
	}

	writeJSON(w, pts)
}

type statusRsp struct {
	NumResults int     `json:"num_results"`
	CPUPercent float64 `json:"cpu_percent"`
	MemorySize uint64  `json:"memory_size"`
}

func (s *Server) status(w http.ResponseWriter, _ *http.Request) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cpuPercent, err := proc.CPUPercent()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	memInfo, err := proc.MemoryInfo()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	numResults := len(s.results)
	s.mu.Unlock()

	writeJSON(w, statusRsp{
		NumResults: numResults,
		CPUPercent: cpuPercent,
		MemorySize: memInfo.RSS,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		panic(err)
	}
}
