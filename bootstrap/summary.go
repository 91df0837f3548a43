package bootstrap

import (
	"fmt"
	"time"

	"github.com/kbukum/regkit/collection"
	"github.com/kbukum/regkit/logger"
)

// Summary tracks and displays the application bootstrap process.
type Summary struct {
	serviceName     string
	version         string
	startupDuration time.Duration
}

// NewSummary creates a new bootstrap summary tracker.
func NewSummary(serviceName, version string) *Summary {
	return &Summary{
		serviceName: serviceName,
		version:     version,
	}
}

// SetStartupDuration records the total startup time.
func (s *Summary) SetStartupDuration(d time.Duration) {
	s.startupDuration = d
}

// DisplaySummary prints the bootstrap summary including the registration
// table collected from the service collection.
func (s *Summary) DisplaySummary(services *collection.ServiceCollection, log *logger.Logger) {
	// Header
	fmt.Printf("\n")
	fmt.Printf("🚀 %s v%s started in %.2fs\n\n",
		s.serviceName, s.version, s.startupDuration.Seconds())

	if services == nil || services.Len() == 0 {
		fmt.Printf("   └── No services registered\n\n")
		return
	}

	infos := services.Registrations()
	fmt.Printf("📦 Registrations (%d)\n", len(infos))
	for i, info := range infos {
		prefix := "├──"
		if i == len(infos)-1 {
			prefix = "└──"
		}
		name := info.ServiceType
		if info.Keyed {
			name = fmt.Sprintf("%s [%s]", name, info.Key)
		}
		fmt.Printf("   %s %s %s ← %s (%s)\n",
			prefix, sourceIcon(info.Source), name, info.Source, info.Lifetime)
	}
	fmt.Printf("\n")
}

func sourceIcon(source string) string {
	switch {
	case source == "factory":
		return "⚙️"
	case len(source) >= 8 && source[:8] == "instance":
		return "📌"
	default:
		return "🧩"
	}
}
