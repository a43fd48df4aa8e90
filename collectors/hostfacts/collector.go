package hostfacts

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/user"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// collectorName is the unique identifier for this collector.
	collectorName = "hostfacts"

	// rootMount is the mount point reported as RootDisk.
	rootMount = "/"
)

// Collector gathers a Snapshot from the local host.
type Collector struct {
	logger zerolog.Logger

	// Overridable sources for testing.
	hostInfo      func(ctx context.Context) (*host.InfoStat, error)
	virtualMemory func(ctx context.Context) (*mem.VirtualMemoryStat, error)
	diskUsage     func(ctx context.Context, path string) (*disk.UsageStat, error)
	cpuInfo       func(ctx context.Context) ([]cpu.InfoStat, error)
	parentOf      func(ctx context.Context, pid int32) (int32, error)
	nameOf        func(ctx context.Context, pid int32) (string, error)
	openOSRelease func() (io.ReadCloser, error)
	uname         func() (string, error)
	lookupEnv     func(key string) (string, bool)
	currentUser   func() (string, error)
	pid           int32
}

// NewCollector creates a Collector backed by gopsutil and the process
// environment.
func NewCollector(logger zerolog.Logger) *Collector {
	return &Collector{
		logger:        logger.With().Str("collector", collectorName).Logger(),
		hostInfo:      host.InfoWithContext,
		virtualMemory: mem.VirtualMemoryWithContext,
		diskUsage:     disk.UsageWithContext,
		cpuInfo:       cpu.InfoWithContext,
		parentOf:      processParent,
		nameOf:        processName,
		openOSRelease: openOSRelease,
		uname:         unameRelease,
		lookupEnv:     os.LookupEnv,
		currentUser:   currentUsername,
		pid:           int32(os.Getpid()),
	}
}

// Collect reads every fact once. Missing facts are reported as warnings
// and left empty in the snapshot; only context cancellation is an error.
func (c *Collector) Collect(ctx context.Context) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var (
		snap     Snapshot
		warnings []string
	)
	warn := func(msg string) {
		if msg != "" {
			warnings = append(warnings, msg)
		}
	}

	info, infoWarn := c.readHostInfo(ctx)
	warn(infoWarn)

	var w string
	snap.User, w = c.readUser()
	warn(w)
	if info != nil {
		snap.Hostname = info.Hostname
	}
	snap.OS, w = c.readOSName(info)
	warn(w)
	snap.Kernel, w = c.readKernel(info)
	warn(w)
	snap.Memory, w = c.readMemory(ctx)
	warn(w)
	snap.RootDisk, w = c.readRootDisk(ctx)
	warn(w)
	snap.CPU, w = c.readCPU(ctx)
	warn(w)
	snap.Shell, w = c.readShell()
	warn(w)
	snap.Terminal, w = c.readTerminal(ctx)
	warn(w)

	for _, msg := range warnings {
		c.logger.Debug().Msg(msg)
	}

	return &Result{
		Snapshot:  snap,
		Timestamp: time.Now(),
		Warnings:  warnings,
	}, nil
}

// readHostInfo returns whatever host.Info managed to gather. gopsutil
// returns partial data alongside an error, so a non-nil stat is kept.
func (c *Collector) readHostInfo(ctx context.Context) (*host.InfoStat, string) {
	info, err := c.hostInfo(ctx)
	if err != nil {
		return info, fmt.Sprintf("hostfacts: host info: %v", err)
	}
	return info, ""
}

func (c *Collector) readUser() (string, string) {
	if name, ok := c.lookupEnv("USER"); ok && name != "" {
		return name, ""
	}
	name, err := c.currentUser()
	if err != nil {
		return "", fmt.Sprintf("hostfacts: current user: %v", err)
	}
	return name, ""
}

// readOSName prefers the os-release NAME (e.g. "Arch Linux") and falls back
// to the title-cased platform reported by gopsutil.
func (c *Collector) readOSName(info *host.InfoStat) (string, string) {
	name, err := c.readOSRelease()
	if err == nil && name != "" {
		return name, ""
	}
	if err == nil {
		err = fmt.Errorf("empty NAME in os-release")
	}

	if info != nil && info.Platform != "" {
		return cases.Title(language.English).String(info.Platform), ""
	}
	if info != nil && info.OS != "" {
		return cases.Title(language.English).String(info.OS), ""
	}
	return "", fmt.Sprintf("hostfacts: os name: %v", err)
}

// readOSRelease extracts NAME from /etc/os-release.
// Format: NAME="Arch Linux"
func (c *Collector) readOSRelease() (string, error) {
	f, err := c.openOSRelease()
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok || key != "NAME" {
			continue
		}
		if unquoted, err := strconv.Unquote(value); err == nil {
			return unquoted, nil
		}
		return strings.Trim(value, `'"`), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("NAME not found in os-release")
}

func (c *Collector) readKernel(info *host.InfoStat) (string, string) {
	if info != nil && info.KernelVersion != "" {
		return info.KernelVersion, ""
	}
	release, err := c.uname()
	if err != nil {
		return "", fmt.Sprintf("hostfacts: kernel: %v", err)
	}
	return release, ""
}

// readMemory takes Total and Available from the same VirtualMemory call.
func (c *Collector) readMemory(ctx context.Context) (*Usage, string) {
	vm, err := c.virtualMemory(ctx)
	if err != nil {
		return nil, fmt.Sprintf("hostfacts: memory: %v", err)
	}
	if vm == nil || vm.Total == 0 {
		return nil, "hostfacts: memory: total is zero"
	}

	u := &Usage{Total: vm.Total, Available: vm.Available}
	c.logger.Debug().
		Str("total", humanize.IBytes(u.Total)).
		Str("used", humanize.IBytes(u.Used())).
		Msg("memory read")
	return u, ""
}

// readRootDisk takes Total and Free from the same statfs of "/".
func (c *Collector) readRootDisk(ctx context.Context) (*Usage, string) {
	du, err := c.diskUsage(ctx, rootMount)
	if err != nil {
		return nil, fmt.Sprintf("hostfacts: statfs %s: %v", rootMount, err)
	}
	if du == nil || du.Total == 0 {
		return nil, "hostfacts: filesystem reports zero size"
	}

	u := &Usage{Total: du.Total, Available: du.Free}
	c.logger.Debug().
		Str("total", humanize.IBytes(u.Total)).
		Str("used", humanize.IBytes(u.Used())).
		Msg("root disk read")
	return u, ""
}

func (c *Collector) readCPU(ctx context.Context) (string, string) {
	infos, err := c.cpuInfo(ctx)
	if err != nil {
		return "", fmt.Sprintf("hostfacts: cpu: %v", err)
	}
	if len(infos) == 0 || infos[0].ModelName == "" {
		return "", "hostfacts: cpu: no model name"
	}
	return strings.TrimSpace(infos[0].ModelName), ""
}

func (c *Collector) readShell() (string, string) {
	shell, ok := c.lookupEnv("SHELL")
	if !ok || shell == "" {
		return "", "hostfacts: SHELL is not set"
	}
	return shell, ""
}

// readTerminal walks two levels up the process tree: this process is
// started by the shell, and the shell by the terminal emulator.
func (c *Collector) readTerminal(ctx context.Context) (string, string) {
	shellPID, err := c.parentOf(ctx, c.pid)
	if err != nil {
		return "", fmt.Sprintf("hostfacts: terminal: parent of %d: %v", c.pid, err)
	}
	termPID, err := c.parentOf(ctx, shellPID)
	if err != nil {
		return "", fmt.Sprintf("hostfacts: terminal: parent of %d: %v", shellPID, err)
	}
	if termPID <= 0 {
		return "", "hostfacts: terminal: shell has no parent"
	}
	name, err := c.nameOf(ctx, termPID)
	if err != nil {
		return "", fmt.Sprintf("hostfacts: terminal: name of %d: %v", termPID, err)
	}
	if name == "" {
		return "", fmt.Sprintf("hostfacts: terminal: process %d has no name", termPID)
	}
	return name, ""
}

func processParent(ctx context.Context, pid int32) (int32, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return 0, err
	}
	return p.PpidWithContext(ctx)
}

func processName(ctx context.Context, pid int32) (string, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return "", err
	}
	return p.NameWithContext(ctx)
}

func openOSRelease() (io.ReadCloser, error) {
	f, err := os.Open("/etc/os-release")
	if err == nil {
		return f, nil
	}
	return os.Open("/usr/lib/os-release")
}

func currentUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return u.Username, nil
}
