// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ris renders RIS bibliographic records for the connector import
// endpoint.
package ris

import (
	"fmt"
	"strings"
)

// DefaultType is the RIS reference type used when none is given
// (JOUR, journal article).
const DefaultType = "JOUR"

// Record holds the fields of one RIS record.
type Record struct {
	// Type is the RIS reference type (TY tag), e.g. JOUR, BOOK, CONF.
	Type string

	// Title is the work title (TI tag). Required.
	Title string

	// Authors lists author names, one AU tag each.
	Authors []string

	// Journal is the journal or periodical name (JO tag).
	Journal string

	// Year is the publication year (PY tag).
	Year string

	// DOI is the digital object identifier (DO tag).
	DOI string
}

// Validate checks that the record can be rendered.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return fmt.Errorf("RIS record requires a title")
	}
	return nil
}

// Render produces the RIS text: TY first, AU lines in order, TI, then
// the optional JO/PY/DO tags, terminated by ER.
func (r Record) Render() string {
	typ := r.Type
	if typ == "" {
		typ = DefaultType
	}

	lines := []string{"TY  - " + typ}
	for _, a := range r.Authors {
		if a = strings.TrimSpace(a); a != "" {
			lines = append(lines, "AU  - "+a)
		}
	}
	lines = append(lines, "TI  - "+r.Title)
	if r.Journal != "" {
		lines = append(lines, "JO  - "+r.Journal)
	}
	if r.Year != "" {
		lines = append(lines, "PY  - "+r.Year)
	}
	if r.DOI != "" {
		lines = append(lines, "DO  - "+r.DOI)
	}
	lines = append(lines, "ER  - ")
	return strings.Join(lines, "\n")
}

// SplitAuthors splits a semicolon-separated author list, trimming
// whitespace and dropping empty entries.
func SplitAuthors(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var authors []string
	for _, a := range strings.Split(s, ";") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}
	return authors
}
