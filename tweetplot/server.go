// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"

	"github.com/aclements/tweetviz/colormap"
	"github.com/aclements/tweetviz/dataset"
	"github.com/aclements/tweetviz/render"
	"github.com/aclements/tweetviz/viz"
)

// plotServer serves an interactive plot. All requests go through mu,
// so the engine only ever sees one request at a time.
type plotServer struct {
	mu      sync.Mutex
	e       *viz.Engine
	records map[int]*dataset.Record
}

func newPlotServer(e *viz.Engine, records []*dataset.Record) *plotServer {
	return &plotServer{e: e, records: dataset.Index(records)}
}

func (s *plotServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/plot.svg", s.servePlot)
	mux.HandleFunc("/toggle", s.serveToggle)
	mux.HandleFunc("/mode", s.serveMode)
	mux.HandleFunc("/selected", s.serveSelected)
	return mux
}

func toggleURL(id int) string {
	return fmt.Sprintf("/toggle?id=%d", id)
}

var indexTmpl = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html><head><title>tweetplot</title></head>
<body>
<form action="/mode">Color by:
<select name="name" onchange="this.form.submit()">
{{range .Modes}}<option{{if eq .Name $.Mode}} selected{{end}}>{{.Name}}</option>
{{end}}</select>
</form>
{{.Plot}}
<h3>Selected Tweets</h3>
<ul>
{{range .Selected}}<li>{{.RawTweet}}</li>
{{end}}</ul>
</body></html>
`))

func (s *plotServer) serveIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var plot strings.Builder
	if err := render.SVG(&plot, s.e.Frame(), render.Options{Link: toggleURL}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data := struct {
		Modes    []colormap.Mode
		Mode     string
		Plot     template.HTML
		Selected []selected
	}{colormap.Modes, s.e.Mode().Name, template.HTML(plot.String()), s.selected()}
	if err := indexTmpl.Execute(w, data); err != nil {
		log.Printf("rendering index: %v", err)
	}
}

func (s *plotServer) servePlot(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w.Header().Set("Content-Type", "image/svg+xml")
	if err := render.SVG(w, s.e.Frame(), render.Options{Link: toggleURL}); err != nil {
		log.Printf("rendering plot: %v", err)
	}
}

func (s *plotServer) serveToggle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.FormValue("id"))
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	_, ok := s.records[id]
	if ok {
		s.e.Toggle(id)
	}
	s.mu.Unlock()
	if !ok {
		http.Error(w, fmt.Sprintf("no tweet %d", id), http.StatusNotFound)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *plotServer) serveMode(w http.ResponseWriter, r *http.Request) {
	mode, err := colormap.ParseMode(r.FormValue("name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	s.e.SetMode(mode)
	s.mu.Unlock()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// selected is one entry of the selected tweets list.
type selected struct {
	Idx      int    `json:"idx"`
	RawTweet string `json:"RawTweet"`
}

// selected returns the selected tweets, most recent first. s.mu must
// be held.
func (s *plotServer) selected() []selected {
	var out []selected
	for _, id := range s.e.Selected() {
		if rec := s.records[id]; rec != nil {
			out = append(out, selected{rec.Idx, rec.RawTweet})
		}
	}
	return out
}

func (s *plotServer) serveSelected(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	sel := s.selected()
	s.mu.Unlock()
	if sel == nil {
		sel = []selected{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sel); err != nil {
		log.Printf("writing selection: %v", err)
	}
}

// serve serves e on addr until interrupted.
func serve(addr string, e *viz.Engine, records []*dataset.Record) {
	srv := &http.Server{Addr: addr, Handler: newPlotServer(e, records).handler()}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		log.Printf("Caught signal %s: shutting down.", sig)
		srv.Shutdown(context.Background())
	}()

	log.Printf("serving on %s", addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
