package hostfacts

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const archOSRelease = `NAME="Arch Linux"
PRETTY_NAME="Arch Linux"
ID=arch
BUILD_ID=rolling
`

// newFakeCollector returns a Collector whose every source succeeds.
func newFakeCollector() *Collector {
	c := NewCollector(zerolog.Nop())
	c.pid = 300
	c.hostInfo = func(context.Context) (*host.InfoStat, error) {
		return &host.InfoStat{Hostname: "yoga", Platform: "arch", OS: "linux", KernelVersion: "6.9.1-arch1-1"}, nil
	}
	c.virtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) {
		return &mem.VirtualMemoryStat{Total: 16 << 30, Available: 12 << 30, Used: 1}, nil
	}
	c.diskUsage = func(_ context.Context, path string) (*disk.UsageStat, error) {
		return &disk.UsageStat{Path: path, Total: 500 << 30, Free: 200 << 30, Used: 1}, nil
	}
	c.cpuInfo = func(context.Context) ([]cpu.InfoStat, error) {
		return []cpu.InfoStat{{ModelName: " AMD Ryzen 7 5800X 8-Core Processor "}}, nil
	}
	parents := map[int32]int32{300: 200, 200: 100}
	c.parentOf = func(_ context.Context, pid int32) (int32, error) {
		if p, ok := parents[pid]; ok {
			return p, nil
		}
		return 0, errors.New("no such process")
	}
	c.nameOf = func(_ context.Context, pid int32) (string, error) {
		if pid == 100 {
			return "alacritty", nil
		}
		return "", errors.New("no such process")
	}
	c.openOSRelease = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(archOSRelease)), nil
	}
	c.uname = func() (string, error) { return "6.9.1-uname", nil }
	env := map[string]string{"USER": "alice", "SHELL": "/usr/bin/zsh"}
	c.lookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	c.currentUser = func() (string, error) { return "fallback", nil }
	return c
}

func TestCollectAllFacts(t *testing.T) {
	c := newFakeCollector()

	res, err := c.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.False(t, res.Timestamp.IsZero())

	snap := res.Snapshot
	assert.Equal(t, "alice", snap.User)
	assert.Equal(t, "yoga", snap.Hostname)
	assert.Equal(t, "Arch Linux", snap.OS)
	assert.Equal(t, "6.9.1-arch1-1", snap.Kernel)
	assert.Equal(t, "/usr/bin/zsh", snap.Shell)
	assert.Equal(t, "alacritty", snap.Terminal)
	assert.Equal(t, "AMD Ryzen 7 5800X 8-Core Processor", snap.CPU)

	require.NotNil(t, snap.Memory)
	assert.Equal(t, uint64(16<<30), snap.Memory.Total)
	assert.Equal(t, uint64(4<<30), snap.Memory.Used(), "used is total minus available, not the library's Used")

	require.NotNil(t, snap.RootDisk)
	assert.Equal(t, uint64(300<<30), snap.RootDisk.Used())
}

func TestCollectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newFakeCollector().Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCollectMissingFacts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Collector)
		check  func(t *testing.T, s Snapshot)
	}{
		{
			name: "shell unset",
			mutate: func(c *Collector) {
				c.lookupEnv = func(key string) (string, bool) {
					if key == "USER" {
						return "alice", true
					}
					return "", false
				}
			},
			check: func(t *testing.T, s Snapshot) { assert.Empty(t, s.Shell) },
		},
		{
			name: "terminal walk fails",
			mutate: func(c *Collector) {
				c.parentOf = func(context.Context, int32) (int32, error) { return 0, errors.New("denied") }
			},
			check: func(t *testing.T, s Snapshot) { assert.Empty(t, s.Terminal) },
		},
		{
			name: "shell is orphaned",
			mutate: func(c *Collector) {
				c.parentOf = func(_ context.Context, pid int32) (int32, error) {
					if pid == 300 {
						return 200, nil
					}
					return 0, nil
				}
			},
			check: func(t *testing.T, s Snapshot) { assert.Empty(t, s.Terminal) },
		},
		{
			name: "memory unreadable",
			mutate: func(c *Collector) {
				c.virtualMemory = func(context.Context) (*mem.VirtualMemoryStat, error) {
					return nil, errors.New("no /proc/meminfo")
				}
			},
			check: func(t *testing.T, s Snapshot) { assert.Nil(t, s.Memory) },
		},
		{
			name: "zero sized disk",
			mutate: func(c *Collector) {
				c.diskUsage = func(context.Context, string) (*disk.UsageStat, error) {
					return &disk.UsageStat{}, nil
				}
			},
			check: func(t *testing.T, s Snapshot) { assert.Nil(t, s.RootDisk) },
		},
		{
			name: "no cpu entries",
			mutate: func(c *Collector) {
				c.cpuInfo = func(context.Context) ([]cpu.InfoStat, error) { return nil, nil }
			},
			check: func(t *testing.T, s Snapshot) { assert.Empty(t, s.CPU) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newFakeCollector()
			tt.mutate(c)

			res, err := c.Collect(context.Background())
			require.NoError(t, err)
			require.Len(t, res.Warnings, 1, "warnings: %v", res.Warnings)
			tt.check(t, res.Snapshot)

			// Unrelated facts are unaffected.
			assert.Equal(t, "yoga", res.Snapshot.Hostname)
			assert.Equal(t, "Arch Linux", res.Snapshot.OS)
		})
	}
}

func TestReadOSNameFallback(t *testing.T) {
	c := newFakeCollector()
	c.openOSRelease = func() (io.ReadCloser, error) { return nil, errors.New("missing") }

	name, warn := c.readOSName(&host.InfoStat{Platform: "ubuntu"})
	assert.Empty(t, warn)
	assert.Equal(t, "Ubuntu", name)

	name, warn = c.readOSName(&host.InfoStat{OS: "darwin"})
	assert.Empty(t, warn)
	assert.Equal(t, "Darwin", name)

	name, warn = c.readOSName(nil)
	assert.Empty(t, name)
	assert.Contains(t, warn, "missing")
}

func TestReadOSRelease(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{name: "quoted", content: archOSRelease, want: "Arch Linux"},
		{name: "unquoted", content: "ID=void\nNAME=Void\n", want: "Void"},
		{name: "single quoted", content: "NAME='Alpine Linux'\n", want: "Alpine Linux"},
		{name: "missing", content: "ID=foo\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newFakeCollector()
			c.openOSRelease = func() (io.ReadCloser, error) {
				return io.NopCloser(strings.NewReader(tt.content)), nil
			}
			got, err := c.readOSRelease()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadKernelFallsBackToUname(t *testing.T) {
	c := newFakeCollector()
	got, warn := c.readKernel(&host.InfoStat{})
	assert.Empty(t, warn)
	assert.Equal(t, "6.9.1-uname", got)
}

func TestReadUserFallsBackToCurrentUser(t *testing.T) {
	c := newFakeCollector()
	c.lookupEnv = func(string) (string, bool) { return "", false }
	got, warn := c.readUser()
	assert.Empty(t, warn)
	assert.Equal(t, "fallback", got)
}

func TestUsageUsed(t *testing.T) {
	assert.Equal(t, uint64(6), Usage{Total: 10, Available: 4}.Used())
	assert.Equal(t, uint64(0), Usage{Total: 4, Available: 10}.Used())
}
