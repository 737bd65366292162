// Package version reports the build stamp of the products binary
package version

// BuildInfo is the build stamp
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the stamp; fields are set with
// -ldflags "-X github.com/RodrigoRozasV/contentful-products-api/internal/core/version.version=v1.2.0"
func Info() BuildInfo {
	return BuildInfo{Service: "products", Version: version, Commit: commit, Date: date}
}

// String renders the stamp on one line, as cobra prints --version
func (b BuildInfo) String() string {
	return b.Version + " (" + b.Commit + ", " + b.Date + ")"
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
