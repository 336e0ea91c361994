package benchmark

// Result represents a single (library, size) measurement.
type Result struct {
	Library       string  `json:"library"`
	SizeLabel     string  `json:"size_label"`
	SizeBytes     int     `json:"size_bytes"`
	Iterations    int     `json:"iterations"`
	MeanMs        float64 `json:"mean_ms"`
	P95Ms         float64 `json:"p95_ms"`
	ThroughputMBs float64 `json:"throughput_mb_s"`
}

// RenderFunc converts a markdown document to its rendered output.
type RenderFunc func(string) (string, error)

// Renderer binds a library name to a render function carrying that
// library's fixed configuration.
type Renderer struct {
	Name   string
	Render RenderFunc
}

// SizeSpec maps a size label to the repetition count that produces its
// document. Sizes are a slice rather than a map so the benchmark iterates
// them in declaration order.
type SizeSpec struct {
	Label       string
	Repetitions int
}
