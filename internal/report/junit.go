// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/megadroid/internal/validate"
)

// JUnitFormatter writes one test suite per run and one test case per check.
type JUnitFormatter struct {
	w    io.Writer
	opts Options
}

// NewJUnitFormatter creates a new JUnit formatter.
func NewJUnitFormatter(w io.Writer, opts Options) *JUnitFormatter {
	return &JUnitFormatter{w: w, opts: opts}
}

type junitSuites struct {
	XMLName  xml.Name     `xml:"testsuites"`
	Name     string       `xml:"name,attr"`
	Tests    int          `xml:"tests,attr"`
	Failures int          `xml:"failures,attr"`
	Suites   []junitSuite `xml:"testsuite"`
}

type junitSuite struct {
	Name     string      `xml:"name,attr"`
	Tests    int         `xml:"tests,attr"`
	Failures int         `xml:"failures,attr"`
	Cases    []junitCase `xml:"testcase"`
}

type junitCase struct {
	Name      string        `xml:"name,attr"`
	ClassName string        `xml:"classname,attr"`
	File      string        `xml:"file,attr,omitempty"`
	Failure   *junitFailure `xml:"failure,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

func (f *JUnitFormatter) Format(results []validate.Result) error {
	suite := junitSuite{Name: "design-consistency"}
	for _, r := range results {
		tc := junitCase{Name: r.Check, ClassName: toolName, File: f.opts.Sources[r.Check]}
		if !r.Passed {
			suite.Failures++
			tc.Failure = &junitFailure{
				Message: fmt.Sprintf("%d violation(s)", len(r.Violations)),
				Content: strings.Join(r.Messages(), "\n"),
			}
		}
		suite.Tests++
		suite.Cases = append(suite.Cases, tc)
	}

	doc := junitSuites{
		Name:     toolName,
		Tests:    suite.Tests,
		Failures: suite.Failures,
		Suites:   []junitSuite{suite},
	}

	if _, err := io.WriteString(f.w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(f.w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding JUnit XML: %w", err)
	}
	_, err := io.WriteString(f.w, "\n")
	return err
}
