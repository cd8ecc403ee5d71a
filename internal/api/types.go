package api

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a semantic version as used by the package registry.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion parses "1.2.3".
func ParseVersion(value string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(value), ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("parse version %q: want major.minor.patch", value)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("parse version %q: bad component %q", value, p)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// Package identifies a dependency by name and version.
type Package struct {
	Name    string  `json:"name"`
	Version Version `json:"version"`
}

func (p Package) String() string {
	return p.Name + "@" + p.Version.String()
}

// Revision mirrors the revision payload exchanged with the playground API.
// An empty ID means the revision has never been saved.
type Revision struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ElmVersion  Version   `json:"elmVersion"`
	Packages    []Package `json:"packages"`
	ElmCode     string    `json:"elmCode"`
	HTMLCode    string    `json:"htmlCode"`
}

// Clone returns a copy that shares no slices with r.
func (r Revision) Clone() Revision {
	dup := r
	if r.Packages != nil {
		dup.Packages = make([]Package, len(r.Packages))
		copy(dup.Packages, r.Packages)
	}
	return dup
}

// SearchResponse mirrors /api/packages/search.
type SearchResponse struct {
	Packages []Package `json:"packages"`
}

// FormatRequest is the body of POST /api/format.
type FormatRequest struct {
	ElmVersion Version `json:"elmVersion"`
	Code       string  `json:"code"`
}

// FormatResponse mirrors POST /api/format.
type FormatResponse struct {
	Code string `json:"code"`
}

// GistResponse mirrors POST /api/gists.
type GistResponse struct {
	URL string `json:"url"`
}

// ErrorReport is a structured diagnostic payload for POST /api/errors.
type ErrorReport struct {
	Context     string `json:"context"`
	StatusCode  int    `json:"statusCode"`
	Explanation string `json:"explanation"`
	RevisionID  string `json:"revisionId,omitempty"`
}

// Compile stage names streamed by the compile socket.
const (
	StageCompiling = "compiling"
	StageSuccess   = "success"
	StageErrors    = "errors"
	StageFailed    = "failed"
)

// CompileEvent is one frame of the compile stream.
type CompileEvent struct {
	Stage    string         `json:"stage"`
	Total    int            `json:"total,omitempty"`
	Complete int            `json:"complete,omitempty"`
	Message  string         `json:"message,omitempty"`
	Errors   []CompileError `json:"errors,omitempty"`
}

// Terminal reports whether no further frames follow this one.
func (e CompileEvent) Terminal() bool {
	switch e.Stage {
	case StageSuccess, StageErrors, StageFailed:
		return true
	default:
		return false
	}
}

// CompileError is a single compiler diagnostic.
type CompileError struct {
	Tag      string `json:"tag"`
	Overview string `json:"overview"`
	Details  string `json:"details"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}
