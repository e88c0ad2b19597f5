package ctl

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mitchellh/go-ps"
)

// DaemonExecutable is the base name of the daemon binary.
const DaemonExecutable = "clockd"

// ProcessLister returns the running processes; ps.Processes in production.
type ProcessLister func() ([]ps.Process, error)

// Status reports the ids of running processes named like the daemon.
func Status(list ProcessLister) ([]int, error) {
	if list == nil {
		list = ps.Processes
	}

	processList, err := list()
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	want := daemonExecutable()
	thisProcessID := os.Getpid()

	var pids []int

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if !strings.EqualFold(process.Executable(), want) {
			continue
		}

		pids = append(pids, process.Pid())
	}

	return pids, nil
}

// PrintStatus writes a one-line daemon status to w.
func PrintStatus(w io.Writer, pids []int) error {
	var err error

	if len(pids) == 0 {
		_, err = fmt.Fprintf(w, "%s is not running\n", DaemonExecutable)
	} else {
		_, err = fmt.Fprintf(w, "%s is running (pid %v)\n", DaemonExecutable, pids)
	}

	return err
}

// daemonExecutable returns the daemon file name with ".exe" on Windows.
func daemonExecutable() string {
	if runtime.GOOS == "windows" {
		return DaemonExecutable + ".exe"
	}

	return DaemonExecutable
}
