// Package chordfile reads, writes and validates chord diagram documents,
// and replays them onto a diagram.
package chordfile

import (
	"encoding/json"
	"fmt"
	"os"
)

// Document is the JSON representation of a diagram:
//
//	{"style":"arc","show_labels":true,"rotation":0,
//	 "items":[{"label":"A","color":"#ff0000"}],
//	 "links":[["A","B"]]}
type Document struct {
	Style      string      `json:"style,omitempty"`
	ShowLabels *bool       `json:"show_labels,omitempty"`
	Rotation   int         `json:"rotation"`
	Items      []Item      `json:"items"`
	Links      [][2]string `json:"links"`
}

// Item is one labelled, coloured item. Color is "#rrggbb".
type Item struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// LabelsShown reports whether labels are on; they are unless the document
// says otherwise.
func (d *Document) LabelsShown() bool {
	return d.ShowLabels == nil || *d.ShowLabels
}

// ParseJSON parses a document from JSON.
func ParseJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ToJSON converts a document to JSON.
func ToJSON(doc *Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}

// Load reads a document from a file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseJSON(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

// Save writes a document as indented JSON.
func Save(path string, doc *Document) error {
	data, err := ToJSON(doc, true)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0644)
}
