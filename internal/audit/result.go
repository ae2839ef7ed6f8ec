package audit

// Result summarizes one audit run.
type Result struct {
	Operation    string
	OutputPath   string
	SARIFPath    string
	FilesScanned int
	Findings     int
}

// Artifacts lists the files written by the run.
func (result Result) Artifacts() []string {
	artifacts := make([]string, 0, 2)
	if len(result.OutputPath) > 0 {
		artifacts = append(artifacts, result.OutputPath)
	}
	if len(result.SARIFPath) > 0 {
		artifacts = append(artifacts, result.SARIFPath)
	}
	return artifacts
}
