// Package reporting converts run reports into machine-readable formats for
// CI consumption.
package reporting

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spboyer/pipecheck/internal/report"
)

// JUnit XML schema types

// JUnitTestSuites is the top-level container.
type JUnitTestSuites struct {
	XMLName    xml.Name         `xml:"testsuites"`
	Tests      int              `xml:"tests,attr"`
	Failures   int              `xml:"failures,attr"`
	TestSuites []JUnitTestSuite `xml:"testsuite"`
}

// JUnitTestSuite maps to one workflow category.
type JUnitTestSuite struct {
	XMLName    xml.Name        `xml:"testsuite"`
	Name       string          `xml:"name,attr"`
	Tests      int             `xml:"tests,attr"`
	Failures   int             `xml:"failures,attr"`
	Timestamp  string          `xml:"timestamp,attr"`
	Properties []JUnitProperty `xml:"properties>property,omitempty"`
	TestCases  []JUnitTestCase `xml:"testcase"`
}

// JUnitTestCase maps to one rule.
type JUnitTestCase struct {
	XMLName   xml.Name      `xml:"testcase"`
	Name      string        `xml:"name,attr"`
	Classname string        `xml:"classname,attr"`
	Failure   *JUnitFailure `xml:"failure,omitempty"`
}

// JUnitFailure represents an unsatisfied rule.
type JUnitFailure struct {
	Message string `xml:"message,attr"`
	Type    string `xml:"type,attr"`
	Body    string `xml:",chardata"`
}

// JUnitProperty is a key-value metadata entry.
type JUnitProperty struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// ConvertToJUnit converts a RunReport to JUnit XML format. Each category
// becomes a testsuite and each rule a testcase, so the checker's progress
// can be published through standard CI test reporting.
func ConvertToJUnit(rep *report.RunReport) *JUnitTestSuites {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	suites := &JUnitTestSuites{}
	for _, cr := range rep.Categories {
		suite := JUnitTestSuite{
			Name:      cr.Name,
			Tests:     len(cr.Rules),
			Timestamp: timestamp,
			Properties: []JUnitProperty{
				{Name: "file", Value: cr.File},
				{Name: "score", Value: strconv.Itoa(cr.Score)},
				{Name: "max", Value: strconv.Itoa(cr.Max)},
			},
		}

		for _, rr := range cr.Rules {
			tc := JUnitTestCase{
				Name:      rr.Name,
				Classname: cr.Name,
			}
			if !rr.Passed {
				suite.Failures++
				tc.Failure = &JUnitFailure{
					Message: rr.Detail,
					Type:    "RuleNotSatisfied",
					Body:    fmt.Sprintf("%s: %s", rr.Name, rr.Detail),
				}
			}
			suite.TestCases = append(suite.TestCases, tc)
		}

		suites.Tests += suite.Tests
		suites.Failures += suite.Failures
		suites.TestSuites = append(suites.TestSuites, suite)
	}
	return suites
}

// WriteJUnit writes the report as indented JUnit XML, with the XML header.
func WriteJUnit(w io.Writer, rep *report.RunReport) error {
	suites := ConvertToJUnit(rep)

	data, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JUnit XML: %w", err)
	}

	if _, err := fmt.Fprintf(w, "%s%s\n", xml.Header, data); err != nil {
		return fmt.Errorf("writing JUnit XML: %w", err)
	}
	return nil
}
