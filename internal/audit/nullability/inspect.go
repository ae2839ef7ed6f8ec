package nullability

import (
	"github.com/temirov/codeaudit/internal/audit"
	"github.com/temirov/codeaudit/internal/blocks"
	"github.com/temirov/codeaudit/internal/textscan"
)

const undefinedLiteralConstant = "undefined"

// PayloadKind distinguishes insert payloads from update payloads.
type PayloadKind string

// Supported payload kinds.
const (
	PayloadKindInsert PayloadKind = "insert"
	PayloadKindUpdate PayloadKind = "update"
)

var (
	insertPattern = textscan.MustCompilePattern(`TablesInsert<'([^']+)'>`)
	updatePattern = textscan.MustCompilePattern(`TablesUpdate<'([^']+)'>`)
	keywordFilter = textscan.NewPrefilter("TablesInsert<", "TablesUpdate<")
)

// Payload is one typed object literal located in a source file.
type Payload struct {
	Kind     PayloadKind
	File     string
	Table    string
	Block    blocks.TextBlock
	Balanced bool
}

// Finding is one payload line that assigns undefined.
type Finding struct {
	Kind  PayloadKind
	File  string
	Line  int
	Table string
	Code  string
}

// FindPayloads locates every insert and update payload in document, inserts first,
// each kind in match order.
func FindPayloads(document audit.Document) ([]Payload, error) {
	var payloads []Payload
	for _, candidate := range []struct {
		kind    PayloadKind
		pattern *textscan.Pattern
	}{
		{kind: PayloadKindInsert, pattern: insertPattern},
		{kind: PayloadKindUpdate, pattern: updatePattern},
	} {
		matches, matchError := candidate.pattern.FindAll(document.Path, document.Text)
		if matchError != nil {
			return nil, matchError
		}
		for _, match := range matches {
			block, balanced := blocks.ExtractBalanced(document.Lines, match.LineIndex)
			payloads = append(payloads, Payload{
				Kind:     candidate.kind,
				File:     match.Path,
				Table:    match.Identifier,
				Block:    block,
				Balanced: balanced,
			})
		}
	}
	return payloads, nil
}

// Findings returns the payload lines mentioning undefined.
func (payload Payload) Findings() []Finding {
	var findings []Finding
	for _, line := range payload.Block.LinesContaining(undefinedLiteralConstant) {
		findings = append(findings, Finding{
			Kind:  payload.Kind,
			File:  payload.File,
			Line:  line.Number,
			Table: payload.Table,
			Code:  line.Text,
		})
	}
	return findings
}

// Summary aggregates payloads and findings across a scan.
type Summary struct {
	InsertPayloads int
	UpdatePayloads int
	InsertFindings []Finding
	UpdateFindings []Finding
}

// Add records payload and its findings.
func (summary *Summary) Add(payload Payload) {
	findings := payload.Findings()
	switch payload.Kind {
	case PayloadKindInsert:
		summary.InsertPayloads++
		summary.InsertFindings = append(summary.InsertFindings, findings...)
	case PayloadKindUpdate:
		summary.UpdatePayloads++
		summary.UpdateFindings = append(summary.UpdateFindings, findings...)
	}
}

// FindingCount returns the number of findings of both kinds.
func (summary Summary) FindingCount() int {
	return len(summary.InsertFindings) + len(summary.UpdateFindings)
}
