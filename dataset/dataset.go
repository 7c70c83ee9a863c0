// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset reads tweet datasets and converts them into points
// for layout.
//
// A dataset is a JSON array of records. Each record must carry an
// "idx" and a "Month"; the remaining fields are optional. For
// example:
//
//	[{"idx": 0, "Month": "March", "Dimension 1": 0.25,
//	  "Sentiment": -0.4, "Subjectivity": 0.6, "RawTweet": "..."}]
package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// Record is a single tweet exactly as it appears in a dataset file.
type Record struct {
	// Idx is the stable identifier of this tweet.
	Idx int `json:"idx"`

	// Month is the band label of this tweet.
	Month string `json:"Month"`

	// Dim1 is the projected "Dimension 1" value, or nil if the
	// record has none.
	Dim1 *float64 `json:"Dimension 1"`

	Sentiment    *float64 `json:"Sentiment"`
	Subjectivity *float64 `json:"Subjectivity"`

	RawTweet string `json:"RawTweet"`
}

// Point is one visualized item. Points carry no position; positions
// are computed per layout pass.
type Point struct {
	ID       int
	Category string

	// Axis is the continuous value used for intra-band placement.
	// It is NaN if the point has no axis value.
	Axis float64

	// Color maps a color mode name to that mode's value.
	Color map[string]float64
}

// Equal reports whether p and q describe the same point.
func (p Point) Equal(q Point) bool {
	if p.ID != q.ID || p.Category != q.Category {
		return false
	}
	if p.Axis != q.Axis && !(math.IsNaN(p.Axis) && math.IsNaN(q.Axis)) {
		return false
	}
	if len(p.Color) != len(q.Color) {
		return false
	}
	for k, v := range p.Color {
		if w, ok := q.Color[k]; !ok || w != v {
			return false
		}
	}
	return true
}

// Point converts r into a Point.
func (r *Record) Point() Point {
	p := Point{
		ID:       r.Idx,
		Category: r.Month,
		Axis:     math.NaN(),
		Color:    make(map[string]float64),
	}
	if r.Dim1 != nil {
		p.Axis = *r.Dim1
	}
	if r.Sentiment != nil {
		p.Color["Sentiment"] = *r.Sentiment
	}
	if r.Subjectivity != nil {
		p.Color["Subjectivity"] = *r.Subjectivity
	}
	return p
}

// Points converts records into Points, preserving order.
func Points(records []*Record) []Point {
	ps := make([]Point, len(records))
	for i, r := range records {
		ps[i] = r.Point()
	}
	return ps
}

// rawRecord is used to detect missing required fields.
type rawRecord struct {
	Idx   *int    `json:"idx"`
	Month *string `json:"Month"`
}

// Parse reads a JSON array of records from r.
//
// Parse rejects records that lack an "idx" or a "Month" and records
// whose idx repeats an earlier record's. Other missing fields are
// left nil and are handled by the layout.
func Parse(r io.Reader) ([]*Record, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("decoding dataset: %v", err)
	}

	records := make([]*Record, 0, len(raws))
	seen := make(map[int]bool)
	for i, raw := range raws {
		var req rawRecord
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("record %d: %v", i, err)
		}
		if req.Idx == nil {
			return nil, fmt.Errorf("record %d: missing idx", i)
		}
		if req.Month == nil {
			return nil, fmt.Errorf("record %d: missing Month", i)
		}
		if seen[*req.Idx] {
			return nil, fmt.Errorf("record %d: duplicate idx %d", i, *req.Idx)
		}
		seen[*req.Idx] = true

		rec := new(Record)
		if err := json.Unmarshal(raw, rec); err != nil {
			return nil, fmt.Errorf("record %d: %v", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Merge concatenates record sets read from separate inputs. It
// returns an error if an idx appears more than once across them.
func Merge(sets ...[]*Record) ([]*Record, error) {
	var out []*Record
	seen := make(map[int]int)
	for i, set := range sets {
		for _, r := range set {
			if j, ok := seen[r.Idx]; ok {
				return nil, fmt.Errorf("duplicate idx %d in inputs %d and %d", r.Idx, j, i)
			}
			seen[r.Idx] = i
			out = append(out, r)
		}
	}
	return out, nil
}

// Index returns a map from record idx to record.
func Index(records []*Record) map[int]*Record {
	m := make(map[int]*Record, len(records))
	for _, r := range records {
		m[r.Idx] = r
	}
	return m
}
