// Command toolstats replays combat scenarios against the item statistics
// tracker and runs the tracker's tick loop.
package main

import (
	"errors"
	"os"

	"github.com/ArmaRealms/ToolStats/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		PrintError("%v", err)
		os.Exit(1)
	}

	registry := NewRegistry()
	registry.Register(&ReplayCommand{cfg: cfg})
	registry.Register(&ServeCommand{cfg: cfg})
	registry.Register(&CheckConfigCommand{cfg: cfg})
	registry.Register(&ValidateCommand{})

	if err := registry.Dispatch(os.Args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			if err != errUsage {
				PrintError("%v", err)
			}
			registry.PrintHelp(os.Stderr)
			os.Exit(2)
		}
		PrintError("%v", err)
		os.Exit(1)
	}
}
