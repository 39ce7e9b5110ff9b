// Package version carries the build metadata of gosap. Version, BuildTime
// and GitCommit are stamped by the linker:
//
//	go build -ldflags "-X github.com/alexiusacademia/gosap/internal/version.Version=0.2.0"
package version

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const (
	Name        = "gosap"
	Description = "Go SAP2000 Automation"
	Author      = "Alexius Academia and gosap contributors"
	Year        = "2026"
)

// String is the one-line identification printed by the version command.
func String() string {
	return Name + " v" + Version + " (" + GitCommit + ", built " + BuildTime + ")"
}
