// main is the entry point for the threesixty CLI.
package main

import (
	"github.com/threesixty-dev/threesixty/cmd"
	"github.com/threesixty-dev/threesixty/internal/contract"
	"github.com/threesixty-dev/threesixty/internal/iocache"
	"github.com/threesixty-dev/threesixty/internal/xlsxio"
)

func main() {
	cmd.SetCacheManager(iocache.Manager)
	cmd.SetWorkbookLoader(xlsxio.NewLoader())

	err := cmd.Execute()
	if profErr := cmd.StopProfiling(); profErr != nil {
		contract.LogWarn("Could not finish profiling", profErr)
	}
	iocache.CloseCaching()
	if err != nil {
		contract.LogFatal("Command failed", err)
	}
}
